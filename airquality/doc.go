// SPDX-License-Identifier: MIT

// Package airquality feeds real-world readings into a simulation as
// pollution sources.
//
// Client talks to a WAQI-style JSON feed (GET {endpoint}/feed/{city}/?token=…)
// and returns the latest Reading for a city. BBox maps the station's
// latitude/longitude onto grid coordinates, north at row 0. Sampler glues
// the two together as a source.Sampler.
//
// Failure policy: the feed is optional. Client reports every failure
// (transport error, non-2xx status, "status":"error" payload, missing AQI)
// as an error, with ErrNoData for "the service answered but had nothing".
// Sampler logs such failures and yields no emissions, so a flaky network
// never stops a run.
package airquality
