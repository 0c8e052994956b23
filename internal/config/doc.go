// Package config locates, merges and decodes the cloudphish client
// configuration.
//
// Configuration lives in INI files whose sections are profiles (one per
// cloudphish deployment). Files are searched in the following order, later
// files overriding earlier ones key by key:
//  1. <install root>/etc/ace_cloudphish.ini
//  2. /etc/ace/cloudphish/ace_cloudphish.ini
//  3. ~/.ace/cloudphish/ace_cloudphish.ini
//  4. an extra file given by the caller (CLOUDPHISH_CONFIG or --config)
//
// A resolved [Profile] is then assembled from the file values, CLOUDPHISH_*
// environment variables and explicit caller overrides, in that order.
//
// The main entry points are [NewLoader] / [Loader.Load] for discovery and
// [ResolveProfile] for building the final profile.
package config
