// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"

	"github.com/unionlabs/bech32util"
	"github.com/unionlabs/bech32util/bech32"
)

var (
	log btclog.Logger

	cfg = &config{}
)

// config defines the global configuration options.
type config struct {
	DebugLevel bool `short:"d" long:"debug" description:"Enable debug log output"`
}

// setupGlobalConfig applies the global options. It runs at the start of
// every command since the options are only known after parsing.
func setupGlobalConfig() {
	if cfg.DebugLevel {
		log.SetLevel(btclog.LevelDebug)
	}
}

// encodeCmd defines the configuration options for the encode command.
type encodeCmd struct {
	Mode  string `short:"m" long:"mode" default:"bech32" description:"Checksum mode: bech32, bech32m or nochecksum"`
	Lower bool   `short:"l" long:"lower" description:"Force lowercase output regardless of hrp case"`
}

// Execute is the main entry point for the command. It's invoked by the
// parser. It encodes the hex data with the given hrp and prints the result.
func (cmd *encodeCmd) Execute(args []string) error {
	setupGlobalConfig()

	if len(args) < 2 {
		return errors.New("required hrp and hex data parameters not " +
			"specified")
	}
	data, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("invalid hex data: %v", err)
	}

	encode := bech32util.Encode
	if cmd.Lower {
		encode = bech32util.EncodeLower
	}
	encoded, err := encode(args[0], data, cmd.Mode)
	if err != nil {
		return err
	}

	log.Debugf("Encoded %d bytes with hrp %q in %s mode", len(data),
		args[0], cmd.Mode)
	fmt.Println(encoded)
	return nil
}

// decodeCmd defines the configuration options for the decode command.
type decodeCmd struct{}

// Execute is the main entry point for the command. It's invoked by the
// parser. It decodes the string and prints the hrp, the data bytes as hex
// and the detected checksum flavor.
func (cmd *decodeCmd) Execute(args []string) error {
	setupGlobalConfig()

	if len(args) < 1 {
		return errors.New("required bech32 string parameter not " +
			"specified")
	}

	hrp, values, version, err := bech32.DecodeGeneric(args[0])
	if err != nil {
		return err
	}
	data, err := bech32.ConvertBits(values, 5, 8, false)
	if err != nil {
		return err
	}

	log.Debugf("Decoded values: %v", spew.Sdump(values))
	fmt.Printf("hrp: %s\n", hrp)
	fmt.Printf("data: %s\n", hex.EncodeToString(data))
	fmt.Printf("checksum: %v\n", version)
	return nil
}

// realMain is the real main function for the utility. It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stderr)
	log = backendLogger.Logger("MAIN")

	// Setup the parser options and commands.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("encode",
		"Encode hex data into a bech32 string",
		"Encode hex data into a bech32 string with the given "+
			"human-readable part and checksum mode.", &encodeCmd{})
	parser.AddCommand("decode",
		"Decode a checksummed bech32 string",
		"Decode a bech32 or bech32m string into its human-readable "+
			"part and hex data.", &decodeCmd{})

	// Parse command line and invoke the Execute function for the
	// specified command.
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
