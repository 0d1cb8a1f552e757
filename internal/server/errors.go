// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned when there is no router or no listen address.
var errNoHTTPHandler = errors.New("http handler and listen address are required")
