// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build !debug

// Package debug exposes the debug build flag shared by the library's
// components; build with -tags debug to keep logging enabled under go
// test.
package debug

const Debug = false
