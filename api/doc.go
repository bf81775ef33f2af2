// File: api/doc.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core contracts of hioload-sock: declarative socket-creation parameters,
// the pluggable Channel capability that materializes sockets (locally or
// through an established relay), the Socket handle capability, the error
// taxonomy, and platform shutdown modes. All interfaces here are pure
// contracts; implementations live in the sibling packages.

package api
