// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a control surface address in format [host]:[port]
//	-b backend base URL
//	-t backend bearer token
//	-d SQLite DSN
//	-f JSON state file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-retry-attempts attempts per push
//	-retry-delay delay between attempts (e.g., "1s")
//	-sync-interval default auto-sync period (e.g., "5m")
//	-probe-interval connectivity probe period (e.g., "30s")
//	-log-path log file path
//	-log-level log level
//	-local-only-while-disabled keep mutations local while sync is off
//	-sync-enabled enable sync on first start
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("admin-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var backendAddress, token string
	var databaseDSN, filePath string
	var jsonConfigPath string
	var requestTimeout, retryDelay time.Duration
	var retryAttempts int
	var syncInterval, probeInterval time.Duration
	var logPath, logLevel string
	var localOnly, syncEnabled bool

	fs.Var(&serverAddress, "a", "Control surface address host:port")
	fs.StringVar(&backendAddress, "b", "", "Backend base URL")
	fs.StringVar(&token, "t", "", "Backend bearer token")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&filePath, "f", "", "JSON state file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.IntVar(&retryAttempts, "retry-attempts", 0, "Attempts per push")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Delay between attempts (e.g., 1s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Default auto-sync period (e.g., 5m)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe period (e.g., 30s)")
	fs.StringVar(&logPath, "log-path", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&localOnly, "local-only-while-disabled", false, "Keep mutations local while sync is disabled")
	fs.BoolVar(&syncEnabled, "sync-enabled", false, "Enable sync on first start")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LocalOnlyWhileDisabled: localOnly,
			InitialSyncEnabled:     syncEnabled,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Retry: Retry{
			MaxAttempts: retryAttempts,
			Delay:       retryDelay,
		},
		Storage: Storage{
			DB:   DB{DSN: databaseDSN},
			File: File{Path: filePath},
		},
		Workers: Workers{
			SyncInterval:  syncInterval,
			ProbeInterval: probeInterval,
		},
		Server:       Server{HTTPAddress: serverAddress.String()},
		Log:          Log{Path: logPath, Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
