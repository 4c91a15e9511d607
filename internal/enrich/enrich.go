// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package enrich

import (
	"math"
	"time"

	"github.com/tomtom215/kessler/internal/logging"
	"github.com/tomtom215/kessler/internal/metrics"
	"github.com/tomtom215/kessler/internal/models"
)

// Orbital constants used by the derived-field computations
const (
	// earthGravitationalParameter is Earth's standard gravitational
	// parameter (GM) in km^3/s^2
	earthGravitationalParameter = 398600.4418

	// earthRadiusKm is the mean Earth radius in km
	earthRadiusKm = 6371.0

	// secondsPerDay converts mean motion from rev/day to rev/s
	secondsPerDay = 86400.0

	// velocityScale converts mean motion (rev/day) into the relative
	// velocity unit the visualization frontend animates with
	velocityScale = 0.1
)

// Risk classification thresholds (strict inequalities)
const (
	highRiskMeanMotion   = 15.0
	highRiskEccentricity = 0.1
	mediumRiskMeanMotion = 12.0
)

// Orbit classification thresholds in rev/day (strict inequalities)
const (
	leoMeanMotion = 11.0
	meoMeanMotion = 1.0
)

// Fallback values for absent descriptive fields
const (
	unknownObjectName = "Unknown Object"
	unknownValue      = "Unknown"
)

// Pipeline converts raw catalog records into enriched debris objects.
// It is stateless and safe for concurrent use.
type Pipeline struct{}

// NewPipeline creates a record enrichment pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Enrich derives display fields for every record in the batch.
//
// Records are processed in input order and the output preserves that
// order. A record that cannot be enriched is dropped whole rather than
// emitted with partial derived fields; drops are logged at debug level
// and counted in metrics, but never fail the batch.
func (p *Pipeline) Enrich(records []models.RawTrackingRecord) []models.EnrichedObject {
	start := time.Now()

	objects := make([]models.EnrichedObject, 0, len(records))
	dropped := 0
	for _, rec := range records {
		obj, err := buildObject(rec)
		if err != nil {
			dropped++
			logging.Debug().
				Err(err).
				Interface("norad_cat_id", rec.Field("NORAD_CAT_ID")).
				Msg("dropping unenrichable catalog record")
			continue
		}
		objects = append(objects, obj)
	}

	metrics.RecordEnrichment(time.Since(start), len(objects), dropped)
	return objects
}

// buildObject assembles a single EnrichedObject. The velocity derivation
// is the only fatal fault: a malformed MEAN_MOTION disqualifies the
// record, while faults in the other derivations degrade to defaults.
func buildObject(rec models.RawTrackingRecord) (models.EnrichedObject, error) {
	velocity, err := Velocity(rec)
	if err != nil {
		return models.EnrichedObject{}, err
	}

	return models.EnrichedObject{
		ID:         rec.Field("NORAD_CAT_ID"),
		Name:       rec.StringField("OBJECT_NAME", unknownObjectName),
		Country:    rec.StringField("COUNTRY_CODE", unknownValue),
		Altitude:   Altitude(rec),
		Velocity:   velocity,
		RiskLevel:  RiskLevel(rec),
		OrbitType:  OrbitType(rec),
		Size:       rec.StringField("RCS_SIZE", unknownValue),
		LaunchDate: rec.StringField("LAUNCH_DATE", unknownValue),
		Epoch:      rec.Field("EPOCH"),
	}, nil
}

// Velocity derives the display velocity from MEAN_MOTION, rounded to
// two decimal places. A missing field yields 0; a present-but-malformed
// field yields an error, which drops the record.
func Velocity(rec models.RawTrackingRecord) (float64, error) {
	meanMotion, err := rec.FloatField("MEAN_MOTION")
	if err != nil {
		return 0, err
	}
	return math.Round(meanMotion*velocityScale*100) / 100, nil
}

// Altitude estimates the object's altitude above Earth in kilometers.
//
// When both APOGEE and PERIGEE are positive the estimate is their
// midpoint. Otherwise a positive MEAN_MOTION is converted to rad/s and
// Kepler's third law solved for the semi-major axis, from which the
// mean Earth radius is subtracted (clamped at zero). Missing fields
// count as zero; any malformed field degrades the estimate to 0.
func Altitude(rec models.RawTrackingRecord) int {
	apogee, err := rec.FloatField("APOGEE")
	if err != nil {
		return 0
	}
	perigee, err := rec.FloatField("PERIGEE")
	if err != nil {
		return 0
	}
	meanMotion, err := rec.FloatField("MEAN_MOTION")
	if err != nil {
		return 0
	}

	switch {
	case apogee > 0 && perigee > 0:
		return int(math.Round((apogee + perigee) / 2))
	case meanMotion > 0:
		n := meanMotion * 2 * math.Pi / secondsPerDay
		semiMajorAxis := math.Cbrt(earthGravitationalParameter / (n * n))
		return int(math.Round(math.Max(semiMajorAxis-earthRadiusKm, 0)))
	default:
		return 0
	}
}

// RiskLevel classifies collision risk from MEAN_MOTION and
// ECCENTRICITY. HIGH requires a fast, eccentric orbit (mean motion
// above 15 rev/day and eccentricity above 0.1); a fast circular orbit
// is MEDIUM; everything else, including records with malformed inputs,
// is LOW.
func RiskLevel(rec models.RawTrackingRecord) models.RiskLevel {
	meanMotion, err := rec.FloatField("MEAN_MOTION")
	if err != nil {
		return models.RiskLow
	}
	eccentricity, err := rec.FloatField("ECCENTRICITY")
	if err != nil {
		return models.RiskLow
	}

	switch {
	case meanMotion > highRiskMeanMotion && eccentricity > highRiskEccentricity:
		return models.RiskHigh
	case meanMotion > mediumRiskMeanMotion:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// OrbitType classifies the orbit regime from MEAN_MOTION: above 11
// rev/day is LEO, above 1 rev/day is MEO, and anything slower is
// labeled GEO. Malformed input defaults to LEO, matching the catalog
// query's LEO population bias.
func OrbitType(rec models.RawTrackingRecord) models.OrbitType {
	meanMotion, err := rec.FloatField("MEAN_MOTION")
	if err != nil {
		return models.OrbitLEO
	}

	switch {
	case meanMotion > leoMeanMotion:
		return models.OrbitLEO
	case meanMotion > meoMeanMotion:
		return models.OrbitMEO
	default:
		return models.OrbitGEO
	}
}
