package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/whyrusleeping/hellabot"

	"kgeyst.com/xposter/pkg/common"
	"kgeyst.com/xposter/pkg/xposter/api"
)

const jobQueueCapacity = 16

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
	agentName := config.GetStringOrDefault("agentName", "xposter")
	roomName := config.GetStringOrDefault("roomName", "xposter")
	serverName := config.GetStringOrDefault("serverName", "irc.euirc.net:6667")
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, api.DefaultLogPath))
	poster := api.NewAPIWithLogger(config, logger)
	// Posting blocks on the network, so it runs off the IRC read loop, one post at a time.
	jobQueue := common.NewJobQueue(jobQueueCapacity, logger)
	defer jobQueue.Stop()
	ircBot, err := hbot.NewBot(serverName, agentName)
	if err != nil {
		return err
	}
	var trigger = hbot.Trigger{
		Condition: func(b *hbot.Bot, m *hbot.Message) bool {
			return m.Command == "PRIVMSG" && strings.HasPrefix(strings.ToLower(m.Content), strings.ToLower(agentName))
		},
		Action: func(b *hbot.Bot, m *hbot.Message) bool {
			what := strings.TrimSpace(m.Content[len(agentName):])
			what = strings.TrimSpace(strings.TrimPrefix(what, ","))
			if len(m.To) == 0 || m.To[0] != '#' {
				return false
			}
			var job common.Job
			switch {
			case what == "health":
				job = func() error {
					var out bytes.Buffer
					err := poster.CheckHealth(context.Background(), &out)
					if err != nil {
						b.Reply(m, m.From+" the API is down: "+err.Error())
						return err
					}
					b.Reply(m, m.From+" "+strings.Join(strings.Fields(out.String()), " "))
					return nil
				}
			case strings.HasPrefix(what, "post "):
				caption := common.RemoveQuotesIfAny(strings.TrimSpace(what[len("post "):]))
				job = func() error {
					var out bytes.Buffer
					result := poster.Post(context.Background(), &out, api.PostRequest{Caption: caption})
					logger.Log(out.String())
					b.Reply(m, m.From+" "+describeResult(result))
					return result.Err
				}
			default:
				b.Reply(m, m.From+" usage: "+agentName+", post <caption> | "+agentName+", health")
				return false
			}
			if !jobQueue.Enqueue(job) {
				b.Reply(m, m.From+" busy, try again later")
			}
			return true
		},
	}
	ircBot.AddTrigger(trigger)
	ircBot.Channels = []string{"#" + roomName}
	ircBot.Run()
	return nil
}

func describeResult(result *api.Result) string {
	switch result.Outcome {
	case api.OutcomePosted:
		if result.StatusURL != "" {
			return "posted: " + result.StatusURL
		}
		return "posted"
	case api.OutcomeRejected:
		return fmt.Sprintf("the API rejected the post with status %d", result.StatusCode)
	case api.OutcomeImageNotFound:
		return "the image wasn't found"
	default:
		if result.Err != nil {
			return "failed: " + result.Err.Error()
		}
		return "failed"
	}
}
