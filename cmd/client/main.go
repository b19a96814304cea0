// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/pgtools/pg-config-view/internal/adapter"
	"github.com/pgtools/pg-config-view/internal/client"
	"github.com/pgtools/pg-config-view/internal/logger"
	"github.com/pgtools/pg-config-view/internal/report"
	"github.com/pgtools/pg-config-view/models"
)

// entryFlags maps command-line flag names to report entry names, in
// report order.
var entryFlags = []struct {
	flag  string
	entry string
	usage string
}{
	{"bindir", "BINDIR", "location of user executables"},
	{"docdir", "DOCDIR", "location of documentation files"},
	{"htmldir", "HTMLDIR", "location of HTML documentation files"},
	{"includedir", "INCLUDEDIR", "location of C header files of the client interfaces"},
	{"pkgincludedir", "PKGINCLUDEDIR", "location of other C header files"},
	{"includedir-server", "INCLUDEDIR-SERVER", "location of C header files for the server"},
	{"libdir", "LIBDIR", "location of object code libraries"},
	{"pkglibdir", "PKGLIBDIR", "location of dynamically loadable modules"},
	{"localedir", "LOCALEDIR", "location of locale support files"},
	{"mandir", "MANDIR", "location of manual pages"},
	{"sharedir", "SHAREDIR", "location of architecture-independent support files"},
	{"sysconfdir", "SYSCONFDIR", "location of system-wide configuration files"},
	{"pgxs", "PGXS", "location of extension makefile"},
	{"configure", "CONFIGURE", "options given to configure when the server was built"},
	{"cc", "CC", "CC value used when the server was built"},
	{"cppflags", "CPPFLAGS", "CPPFLAGS value used when the server was built"},
	{"cflags", "CFLAGS", "CFLAGS value used when the server was built"},
	{"cflags_sl", "CFLAGS_SL", "CFLAGS_SL value used when the server was built"},
	{"ldflags", "LDFLAGS", "LDFLAGS value used when the server was built"},
	{"ldflags_sl", "LDFLAGS_SL", "LDFLAGS_SL value used when the server was built"},
	{"libs", "LIBS", "LIBS value used when the server was built"},
	{"version", "VERSION", "version"},
}

func main() {
	log := logger.NewCLILogger("pg-config-client")

	serverAddr := flag.String("s", "", "query a running pg-config-view server at host:port instead of the local install")
	timeout := flag.Duration("request-timeout", 15*time.Second, "server request timeout")
	plain := flag.Bool("plain", false, "force plain NAME = VALUE output")

	requested := make(map[string]*bool, len(entryFlags))
	for _, ef := range entryFlags {
		requested[ef.entry] = flag.Bool(ef.flag, false, ef.usage)
	}
	flag.Parse()

	var names []string
	for _, ef := range entryFlags {
		if *requested[ef.entry] {
			names = append(names, ef.entry)
		}
	}

	entries, err := loadEntries(*serverAddr, *timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration report")
	}

	if len(names) > 0 {
		selected, err := client.Select(entries, names)
		if err != nil {
			log.Fatal().Err(err).Msg("selecting entries")
		}
		if err := client.WritePlain(os.Stdout, selected, true); err != nil {
			log.Fatal().Err(err).Msg("writing output")
		}
		return
	}

	if !*plain && isatty.IsTerminal(os.Stdout.Fd()) {
		err = client.WriteStyled(os.Stdout, entries)
	} else {
		err = client.WritePlain(os.Stdout, entries, false)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("writing output")
	}
}

// loadEntries produces the report either from a remote server or from
// the local installation the binary lives in.
func loadEntries(serverAddr string, timeout time.Duration) ([]models.ConfigEntry, error) {
	if serverAddr != "" {
		serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
			BaseURL: serverAddr,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("creating server adapter: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return serverAdapter.GetConfig(ctx)
	}

	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving executable path: %w", err)
	}

	return report.Report(execPath), nil
}
