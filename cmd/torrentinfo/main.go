// Command torrentinfo prints the declared name and file list of a .torrent
// file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/anacrolix/torrent/metainfo"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: torrentinfo <file.torrent>")
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, w io.Writer) error {
	mi, err := metainfo.LoadFromFile(path)
	if err != nil {
		return err
	}
	info, err := mi.UnmarshalInfo()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, info.Name)
	for i, f := range info.UpvertedFiles() {
		fmt.Fprintf(w, "%d. %s (%d bytes)\n", i+1, f.DisplayPath(&info), f.Length)
	}
	return nil
}
