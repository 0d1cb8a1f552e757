// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It alternates the sign-in flow and the notes screen of the terminal UI
// until the user quits, and drops the local session when the server no
// longer accepts it.
package client
