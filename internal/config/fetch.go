// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/trimlog/internal/ctxlog"
)

// ErrGetConfigFile is returned when the configuration file cannot be retrieved.
var ErrGetConfigFile = errors.New("failed to get config file")

const subdirSeparator = "//"

// FromURL retrieves and decodes a configuration file. See Fetch for the URL syntax.
func FromURL(ctx context.Context, url string) (Config, error) {
	data, name, err := Fetch(ctx, url)
	if err != nil {
		return Config{}, err
	}

	cfg, err := Load(data, name)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Fetch returns the content and base name of a configuration file.
// Local paths are read directly. Anything else goes through go-getter, with
// "//" separating the repository from the file,
// e.g. git::https://example.com/repo.git//trimlog.yaml?ref=main.
func Fetch(ctx context.Context, src string) ([]byte, string, error) {
	if src == "" {
		return nil, "", ErrGetConfigFile
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrGetConfigFile, err)
	}

	req := &getter.Request{Src: src, Pwd: wd, GetMode: getter.ModeDir}

	local, err := getter.Detect(req, &getter.FileGetter{})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrGetConfigFile, err)
	}

	if local {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrGetConfigFile, err)
		}

		return data, filepath.Base(src), nil
	}

	// go-getter fetches directories, so the file is read out of the fetched tree.
	// https://github.com/hashicorp/go-getter/issues/98
	dir, name := splitRemote(src)
	if name == "" {
		return nil, "", fmt.Errorf("%w: no file in URL: %s", ErrGetConfigFile, src)
	}

	tmpDir, err := os.MkdirTemp("", "trimlog-getter-*")
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrGetConfigFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	ctxlog.Debug(ctx, "fetching config file", "src", dir, "file", name)

	client := getter.Client{DisableSymlinks: true}

	res, err := client.Get(ctx, &getter.Request{
		Src:     dir,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrGetConfigFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, name))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrGetConfigFile, err)
	}

	return data, name, nil
}

// splitRemote splits a go-getter URL at its last "//" into the directory to
// fetch and the file name. Query parameters stay on the directory URL.
// Both results are empty when the URL names no file.
func splitRemote(src string) (string, string) {
	base, query, _ := strings.Cut(src, "?")

	i := strings.LastIndex(base, subdirSeparator)
	if i < 0 || strings.HasSuffix(base[:i], ":") {
		return "", ""
	}

	sub, name := path.Split(base[i+len(subdirSeparator):])
	if name == "" {
		return "", ""
	}

	dir := base[:i]
	if sub = strings.TrimSuffix(sub, "/"); sub != "" {
		dir += subdirSeparator + sub
	}

	if query != "" {
		dir += "?" + query
	}

	return dir, name
}
