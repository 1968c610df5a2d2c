// Package stats computes derived performance metrics from ship and
// engine records.
package stats

import "x4stats/internal/extract"

// Normalization constants for the standardized round-trip benchmark:
// hauling CargoReference units of cargo over DistanceReference meters.
const (
	CargoReference    = 1_000_000.0
	DistanceReference = 50_000.0
)

// minDrag floors forward drag so the speed formula stays division-safe.
const minDrag = 1e-6

// TravelSpeed computes travel speed in m/s:
//
//	(forward_thrust * travel_thrust * engine_connections) / drag_forward
//
// A nil ship or engine yields 0, the "no selection" state, not an error.
func TravelSpeed(ship *extract.Ship, engine *extract.Engine) float64 {
	if ship == nil || engine == nil {
		return 0
	}

	drag := ship.DragForward
	if drag <= 0 {
		drag = minDrag
	}
	connections := ship.EngineConnections
	if connections <= 0 {
		connections = 1
	}

	return engine.ForwardThrust * engine.TravelThrust * float64(connections) / drag
}

// CargoRoundTrip computes the benchmark round-trip duration in minutes
// for a given cargo capacity and travel speed. ok is false when either
// input is missing or non-positive, in which case the metric is not
// applicable.
func CargoRoundTrip(cargoMax int, speed float64) (minutes float64, ok bool) {
	if cargoMax <= 0 || speed <= 0 {
		return 0, false
	}
	trips := CargoReference / float64(cargoMax)
	oneWaySeconds := DistanceReference / speed
	return trips * oneWaySeconds / 60 * 2, true
}
