// Package unraidcli is a command-line client for the Unraid GraphQL API.
//
// # Overview
//
// The unraid binary manages named server profiles locally and issues
// queries and mutations against one Unraid server per invocation:
// listing Docker containers and starting, stopping, restarting, or
// updating them by name.
//
// # Endpoint resolution
//
// Each invocation resolves a single (url, api key) endpoint from three
// sources, in strict priority order:
//
//  1. --url and --api-key given together are used verbatim.
//  2. UNRAID_URL and UNRAID_API_KEY set together are used, with an
//     individually given CLI flag overriding just that field.
//  3. The profile named by --server, UNRAID_SERVER, or the profile
//     file's default entry, again with per-field CLI overrides.
//
// # Usage
//
// Configure a server:
//
//	unraid config add tower --url https://192.168.1.100 --api-key <key>
//
// Work with containers:
//
//	unraid docker list-containers --all
//	unraid docker restart plex
//
// Unraid servers commonly present self-signed TLS certificates; pass
// --insecure (or store insecure: true in the profile) to accept them.
// This is an explicit opt-in, never a silent default.
package unraidcli
