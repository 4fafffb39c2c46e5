package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"kgeyst.com/xposter/pkg/common"
	"kgeyst.com/xposter/pkg/xposter/api"
)

const help = `Type a caption and press Enter to post the current image with it.
:image <path or URL>  switch the image for the following posts
:health               check whether the posting API is up
:quit                 exit`

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := api.LoadConfig("config.yaml", ".env")
	if err != nil {
		return err
	}
	imagePath := config.GetString(api.ConfigKeyImagePath)
	poster := api.NewAPI(config)
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	fmt.Println(help)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit":
			return nil
		case line == ":health":
			_ = poster.CheckHealth(context.Background(), os.Stdout)
		case strings.HasPrefix(line, ":image "):
			imagePath = common.RemoveQuotesIfAny(strings.TrimSpace(line[len(":image "):]))
			fmt.Printf("Image: %s\n", imagePath)
		case strings.HasPrefix(line, ":"):
			fmt.Println(help)
		default:
			poster.Post(context.Background(), os.Stdout, api.PostRequest{
				ImagePath: imagePath,
				Caption:   common.RemoveQuotesIfAny(line),
			})
		}
	}
	return nil
}
