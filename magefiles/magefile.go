// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the nodelist project using Mage.
//
// Usage:
//
//	mage build             Compile nodelist binary to bin/
//	mage test:all          Run all tests (unit + integration)
//	mage test:unit         Run only unit tests (exclude integration)
//	mage test:integration  Run only integration tests (builds first)
//	mage run               Build and run the canonical scenario
//	mage lint              Run golangci-lint
//	mage clean             Remove build artifacts
//	mage install           Install nodelist to GOPATH/bin
package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified.
var Default = Build

// Run builds the binary and runs the canonical scenario.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName))
}
