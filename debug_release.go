// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build release

package humantalk

const defaultIncludeDebug = false
