// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/spf13/afero"
)

// ErrGetConfigFile is returned when a remote configuration file cannot be retrieved.
var ErrGetConfigFile = errors.New("failed to get config file")

// Resolve loads the configuration from src. Paths that exist on FsFactory()
// are read directly, anything else is retrieved with go-getter and parsed
// according to the extension of its file name.
func Resolve(ctx context.Context, src string) (*File, error) {
	if src == "" {
		return nil, ErrGetConfigFile
	}

	if ok, _ := afero.Exists(FsFactory(), src); ok {
		return Load(src)
	}

	dir, name, err := splitSource(src)
	if err != nil {
		return nil, err
	}

	data, err := Fetch(ctx, dir, name)
	if err != nil {
		return nil, err
	}

	return Parse(name, data)
}

// Fetch downloads the go-getter source dir and returns the content of the
// file name within it.
// See https://github.com/hashicorp/go-getter.
func Fetch(ctx context.Context, dir, name string) ([]byte, error) {
	if dir == "" || name == "" {
		return nil, ErrGetConfigFile
	}

	tmpDir, err := os.MkdirTemp("", "humantalk-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetConfigFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetConfigFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	// Single files cannot be fetched by every getter, so the directory is.
	// https://github.com/hashicorp/go-getter/issues/98
	res, err := client.Get(ctx, &getter.Request{
		Src:     dir,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
		Copy:    true,
	})
	if err != nil {
		return nil, errors.Join(ErrGetConfigFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, name))
	if err != nil {
		return nil, errors.Join(ErrGetConfigFile, err)
	}

	return data, nil
}

// splitSource splits "git::https://host/repo//conf/humantalk.yaml?ref=v1"
// into "git::https://host/repo//conf?ref=v1" and "humantalk.yaml".
func splitSource(src string) (string, string, error) {
	path, query, hasQuery := strings.Cut(src, "?")

	i := strings.LastIndex(path, "/")
	if i < 0 || i == len(path)-1 {
		return "", "", fmt.Errorf("%w: no file name in %s", ErrGetConfigFile, src)
	}

	dir, name := strings.TrimSuffix(path[:i], "/"), path[i+1:]
	if dir == "" {
		dir = "/"
	}

	if hasQuery {
		dir += "?" + query
	}

	return dir, name, nil
}
