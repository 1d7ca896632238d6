package pasteboard_test

import (
	"fmt"

	"github.com/glasspane/pasteboard"
	"github.com/rs/zerolog"
)

func Example() {
	svc := pasteboard.NewMemoryService(zerolog.Nop())

	general := pasteboard.Default(pasteboard.WithService(svc))
	defer general.Release()

	general.CopyText("my message here")
	if text, ok := general.Text(); ok {
		fmt.Println(text)
	}

	general.CopyFiles([]string{"/tmp/sample.txt"})
	urls, err := general.FileURLs()
	if err != nil {
		fmt.Println("read failed:", err)
		return
	}
	for _, u := range urls {
		fmt.Println(u)
	}

	// Output:
	// my message here
	// file:///tmp/sample.txt
}

func ExampleNamed() {
	svc := pasteboard.NewMemoryService(zerolog.Nop())

	find := pasteboard.Named(pasteboard.NameFind, pasteboard.WithService(svc))
	defer find.Release()

	find.CopyText("needle")
	text, _ := find.Text()
	fmt.Println(text)

	// Output:
	// needle
}
