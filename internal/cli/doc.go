// Package cli implements the cloudphish command-line front end: flag
// parsing, profile selection and dispatch to exactly one client call.
package cli
