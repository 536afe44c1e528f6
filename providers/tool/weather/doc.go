// Package weather provides the get_weather tool, backed by the free wttr.in
// JSON API. It reports the current condition and temperature for a city as a
// short description string.
//
// Construct a [Service] with [NewService] and wrap it with [NewWeatherTool]
// for registration.
package weather
