// Command base64 encodes or decodes standard input or a file to
// standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	base64 "github.com/jetseven/Base64-Additions"
)

var decode = pflag.BoolP("decode", "d", false, "decode data")

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-d] [FILE]\n\n"+
			"Base64 encodes or decodes FILE, or standard input, to standard output.\n"+
			"With no FILE, or when FILE is -, read standard input.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if err := run(pflag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "base64: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	in := os.Stdin
	switch {
	case len(args) > 1:
		pflag.Usage()
		os.Exit(2)
	case len(args) == 1 && args[0] != "-":
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	if *decode {
		out, err := base64.DecodeString(string(data))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	_, err = fmt.Println(base64.EncodeToString(data))
	return err
}
