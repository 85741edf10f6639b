// This file is part of Wirehub.
//
// Wirehub is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wirehub is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wirehub.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/wirehub/hardware/onewire/ds2438"
	"github.com/jetsetilly/wirehub/hardware/onewire/transport"
	"github.com/jetsetilly/wirehub/hardware/preferences"
	"github.com/jetsetilly/wirehub/logger"
	"github.com/jetsetilly/wirehub/modalflag"
	"github.com/jetsetilly/wirehub/prefs"
	"github.com/jetsetilly/wirehub/statsview"
	"github.com/jetsetilly/wirehub/version"
)

func main() {
	// the value to use with os.Exit()
	exitVal := 0

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "SCRIPT", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(exitVal)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, os.Stdout)

	case "SCRIPT":
		err = script(md, os.Stdout)

	case "DUMP":
		err = dump(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		exitVal = 20
	}

	os.Exit(exitVal)
}

// create the emulated device from the preferences string. the string is
// pushed onto the command line stack for the duration of the call and any
// unused preferences are logged.
func createDevice(prefsString string) (*ds2438.DS2438, *preferences.Preferences, error) {
	prefs.PushCommandLineStack(prefsString)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "wirehub", "unused preferences: %s", unused)
		}
	}()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	id, err := p.ID()
	if err != nil {
		return nil, nil, err
	}

	ds, err := ds2438.NewDS2438(logger.Allow, id, p.Pages.Get().(int))
	if err != nil {
		return nil, nil, err
	}
	p.Plumb(ds)

	return ds, p, nil
}

func setEcho(log bool, output io.Writer) {
	if log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	baud := md.AddInt("baud", 9600, "speed of the serial line")
	timeout := md.AddDuration("timeout", 20*time.Millisecond, "line idle time that ends a transaction")
	prefsString := md.AddString("prefs", "", "device preferences: key::value; key::value")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("serial device required for %s mode", md)
	case 1:
		ds, _, err := createDevice(*prefsString)
		if err != nil {
			return err
		}

		if *stats {
			statsview.Launch(output)
		}

		port, err := transport.OpenSerial(logger.Allow, md.GetArg(0), *baud, *timeout)
		if err != nil {
			return err
		}
		defer port.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Fprintf(output, "serving %s on %s\n", ds.ROM(), md.GetArg(0))

		err = transport.Serve(ctx, ds, port.Stream)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		fmt.Fprintf(output, "%d unrecognised commands\n", port.Errors)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func script(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	prefsString := md.AddString("prefs", "", "device preferences: key::value; key::value")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	memory := md.AddBool("memory", false, "print memory image after the script has completed")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()

		transactions, err := transport.ParseScript(f)
		if err != nil {
			return err
		}

		ds, _, err := createDevice(*prefsString)
		if err != nil {
			return err
		}

		for _, s := range transport.Play(ds, transactions) {
			fmt.Fprintln(output, s)
		}

		if *memory {
			io.WriteString(output, ds.String())
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	prefsString := md.AddString("prefs", "", "device preferences: key::value; key::value")
	graph := md.AddString("memviz", "", "write graphviz description of the device to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ds, pr, err := createDevice(*prefsString)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", ds.ROM())
	fmt.Fprintf(output, "%s\n", pr)
	io.WriteString(output, ds.String())

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, ds)
	}

	return nil
}
