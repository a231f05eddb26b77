// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s backup server address used by the client
//	-d server database DSN
//	-f server backup blob directory
//	-max-backup-size upload size limit in bytes
//	-progress-db client progress database path
//	-state-file client sync state file path
//	-prefs-file client preferences file path
//	-temp-dir directory for snapshot files
//	-tracked-prefs comma separated tracked preference keys
//	-token client account token
//	-log-file client log file
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-adapter-timeout client request timeout
//	-hash-key security hash key
//	-trace-exporter none, stdout or otlp
//	-trace-endpoint OTLP collector endpoint
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN, backupDir string
	var maxBackupSize int64
	var progressDSN, stateFile, prefsFile, tempDir string
	var trackedPrefs string
	var accountToken, logFile string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout, adapterTimeout time.Duration
	var hashKey string
	var traceExporter, traceEndpoint string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Backup server address")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&backupDir, "f", "", "Backup blob directory")
	fs.Int64Var(&maxBackupSize, "max-backup-size", 0, "Upload size limit in bytes")
	fs.StringVar(&progressDSN, "progress-db", "", "Progress database path")
	fs.StringVar(&stateFile, "state-file", "", "Sync state file path")
	fs.StringVar(&prefsFile, "prefs-file", "", "Preferences file path")
	fs.StringVar(&tempDir, "temp-dir", "", "Directory for snapshot files")
	fs.StringVar(&trackedPrefs, "tracked-prefs", "", "Comma separated tracked preference keys")
	fs.StringVar(&accountToken, "token", "", "Account token")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&traceExporter, "trace-exporter", "", "Span exporter: none, stdout or otlp")
	fs.StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP collector endpoint")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			AccountToken:  accountToken,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				BackupDir:     backupDir,
				MaxBackupSize: maxBackupSize,
			},
			Local: Local{
				ProgressDSN:     progressDSN,
				StateFile:       stateFile,
				PreferencesFile: prefsFile,
				TempDir:         tempDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Sync: Sync{
			TrackedPreferences: splitList(trackedPrefs),
		},
		Tracing: Tracing{
			Exporter: traceExporter,
			Endpoint: traceEndpoint,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
