// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cloudphish is a client for the ACE cloudphish URL-analysis
// service.
//
// A [Client] is built from a named profile found in the layered
// ace_cloudphish.ini configuration (see [New]) or from an explicit
// [Profile] (see [NewFromProfile]). It exposes the three cloudphish API
// calls:
//
//   - [Client.Submit] / [Client.SubmitText]: POST api/cloudphish/submit
//   - [Client.Get]: GET api/cloudphish/download[_alert]
//   - [Client.Clear]: GET api/cloudphish/clear_alert
//
// Only Get checks the HTTP status; Submit and Clear return whatever body
// the server sent, so a non-JSON error page surfaces as a decode error.
//
// Example:
//
//	c, err := cloudphish.New("default")
//	if err != nil {
//		return err
//	}
//	res, err := c.Submit(ctx, models.SubmitRequest{URL: "http://example.com"})
package cloudphish
