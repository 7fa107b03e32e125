// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes and decides whether the
// process should emit colour at all. NO_COLOR disables colour, FORCE_COLOR
// enables it, otherwise colour is used when stderr is a terminal.
package color
