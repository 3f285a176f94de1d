// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads humantalk settings from YAML or HCL files, either from
// the local filesystem or from any source supported by go-getter.
//
// YAML:
//
//	debug: false
//	colors:
//	  error: red
//	  warning: 214
//	bug_report:
//	  message: Oh no! myapp has crashed
//	  url: https://example.com/issues
//
// HCL:
//
//	debug  = false
//	colors = { error = "red", warning = 214 }
//	bug_report {
//	  message = "myapp ${humantalk.version} has crashed"
//	  url     = "https://example.com/issues"
//	}
package config
