// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes human readable lines to stderr through PrettyHandler.
// The level is read from the environment variable named after the executable,
// e.g. TRIMLOG_LOG_LEVEL, and defaults to WARN so a successful run prints nothing.
package ctxlog
