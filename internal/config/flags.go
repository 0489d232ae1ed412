// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses the command-line args (without the program name). The
// first positional argument, if any, is the page URL to open.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-site static site directory
//	-d storage DSN
//	-n storage key namespace
//	-q URL query parameter carrying the access phrase
//	-o output path for the rendered page ("-" for stdout)
//	-clipboard copy the unlocked content to the clipboard
//	-log client log file path
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-user-agent user agent for page requests
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var siteDir string
	var dsn string
	var namespace string
	var queryParam string
	var outputPath string
	var clipboard bool
	var logPath string
	var requestTimeout time.Duration
	var userAgent string
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-page-gate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&siteDir, "site", "", "Static site directory")
	fs.StringVar(&dsn, "d", "", "Storage DSN")
	fs.StringVar(&namespace, "n", "", "Storage key namespace")
	fs.StringVar(&queryParam, "q", "", "URL query parameter with the access phrase")
	fs.StringVar(&outputPath, "o", "", "Output path for the rendered page")
	fs.BoolVar(&clipboard, "clipboard", false, "Copy unlocked content to the clipboard")
	fs.StringVar(&logPath, "log", "", "Client log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&userAgent, "user-agent", "", "User agent for page requests")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Namespace:  namespace,
			QueryParam: queryParam,
		},
		Storage: Storage{
			DSN: dsn,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			SiteDir:        siteDir,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		Client: Client{
			PageURL:    fs.Arg(0),
			OutputPath: outputPath,
			Clipboard:  clipboard,
			LogPath:    logPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host must be "localhost" or an IP address.
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
