// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/MKhiriev/go-cloudphish/cloudphish"
	"github.com/MKhiriev/go-cloudphish/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloudphish_mock.go -package=mock

// Cloudphish is the subset of *cloudphish.Client the command dispatches to.
type Cloudphish interface {
	// SubmitText submits a URL and returns the raw response body.
	SubmitText(ctx context.Context, req models.SubmitRequest) (string, error)

	// Get downloads cached content by sha256. compressed selects the
	// download_alert endpoint.
	Get(ctx context.Context, sha256 string, compressed bool) (string, error)

	// Clear drops the cached result for a URL.
	Clear(ctx context.Context, url string) (models.Result, error)
}

// ClientFactory builds the Cloudphish client for an already loaded profile.
type ClientFactory func(profile cloudphish.Profile, opts ...cloudphish.Option) (Cloudphish, error)

// NewClient is the default ClientFactory, backed by cloudphish.NewFromProfile
// so the config files read by the command are not searched again.
func NewClient(profile cloudphish.Profile, opts ...cloudphish.Option) (Cloudphish, error) {
	c, err := cloudphish.NewFromProfile(profile, opts...)
	if err != nil {
		return nil, err
	}

	return c, nil
}
