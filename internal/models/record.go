// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

// Package models defines data structures used throughout the Kessler application.
// These models represent raw catalog records from Space-Track, enriched debris
// objects, catalog snapshots, and API responses.

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ErrMalformedField indicates a catalog field was present but could not be
// interpreted as the expected type. Callers decide whether a malformed field
// disqualifies the whole record or degrades to a default.
var ErrMalformedField = errors.New("malformed catalog field")

// RawTrackingRecord is a single general-perturbations (GP) record exactly as
// returned by the Space-Track catalog, with no schema enforced.
//
// Space-Track serializes every GP value as a JSON string ("MEAN_MOTION":
// "15.49"), but the format is not guaranteed: fields can be absent, null, or
// numeric depending on catalog era. The accessor methods encode the coercion
// rules the enrichment pipeline relies on:
//
//   - FloatField: absent means zero (orbital parameters default to 0 and
//     downstream formulas treat 0 as "unknown"); present-but-unparseable is an
//     error the caller must classify.
//   - StringField: absent or non-string means the provided fallback.
//   - Field: raw passthrough for identifier fields (id, epoch) that are
//     emitted as-is, including null.
//
// Well-known GP keys: NORAD_CAT_ID, OBJECT_NAME, COUNTRY_CODE, APOGEE,
// PERIGEE, MEAN_MOTION, ECCENTRICITY, RCS_SIZE, LAUNCH_DATE, EPOCH.
type RawTrackingRecord map[string]interface{}

// FloatField returns the named field as a float64.
//
// A missing field yields (0, nil): absent orbital parameters are zero by
// convention. A present field that is null, empty, or not parseable as a
// number yields ErrMalformedField.
func (r RawTrackingRecord) FloatField(key string) (float64, error) {
	raw, ok := r[key]
	if !ok {
		return 0, nil
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrMalformedField, key, v.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrMalformedField, key, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s has type %T", ErrMalformedField, key, raw)
	}
}

// StringField returns the named field as a string, or fallback when the field
// is absent, null, or not a string.
func (r RawTrackingRecord) StringField(key, fallback string) string {
	raw, ok := r[key]
	if !ok {
		return fallback
	}
	s, ok := raw.(string)
	if !ok {
		return fallback
	}
	return s
}

// Field returns the raw field value without coercion, or nil when absent.
// Used for identifier fields that pass through to responses untouched.
func (r RawTrackingRecord) Field(key string) interface{} {
	return r[key]
}
