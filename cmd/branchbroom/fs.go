// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package main

import "github.com/tidyops/branchbroom/internal/fsys"

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a fsys.MemFS or fsys.MockFileSystem.
var cmdFS fsys.FileSystem = fsys.DefaultFS
