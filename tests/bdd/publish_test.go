package bdd

import (
	"fmt"
	"os"
	"testing"

	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Paths:  []string{"./featureFiles"}, // 指向 feature 檔相對路徑
			Format: "pretty",
			Output: os.Stdout,
		},
	}

	if suite.Run() != 0 {
		t.Fail()
	}
}

// 這個函式用來註冊 Gherkin 與 Step Definition 的對應
func InitializeScenario(s *godog.ScenarioContext) {
	s.Step(`^a logged in member "([^"]*)"$`, aLoggedInMember)
	s.Step(`^the member uploads a video file "([^"]*)"$`, theMemberUploadsAVideoFile)
	s.Step(`^the member uploads a thumbnail "([^"]*)"$`, theMemberUploadsAThumbnail)
	s.Step(`^the publish flow should be "([^"]*)"$`, thePublishFlowShouldBe)
	s.Step(`^the member publishes "([^"]*)" at "([^"]*)"$`, theMemberPublishesAt)
	s.Step(`^the feed should list "([^"]*)" first$`, theFeedShouldListFirst)
}

// 以下為 in-memory Step function
var (
	currentMember string
	videoURL      string
	thumbnailURL  string
	flowState     string
	feedVideos    []feedVideo
)

type feedVideo struct {
	title     string
	createdAt string
}

func aLoggedInMember(member string) error {
	currentMember = member
	videoURL = ""
	thumbnailURL = ""
	flowState = "awaiting_video"
	feedVideos = nil
	return nil
}

func theMemberUploadsAVideoFile(name string) error {
	if flowState != "awaiting_video" {
		return fmt.Errorf("flow is %s, cannot accept a video", flowState)
	}
	videoURL = "https://storage/" + currentMember + "/" + name
	flowState = "awaiting_thumbnail"
	return nil
}

func theMemberUploadsAThumbnail(name string) error {
	if flowState != "awaiting_thumbnail" {
		return fmt.Errorf("flow is %s, cannot accept a thumbnail", flowState)
	}
	thumbnailURL = "https://storage/" + currentMember + "/" + name
	flowState = "done"
	return nil
}

func thePublishFlowShouldBe(expected string) error {
	if flowState != expected {
		return fmt.Errorf("expected flow %s, but got %s", expected, flowState)
	}
	return nil
}

func theMemberPublishesAt(title, createdAt string) error {
	feedVideos = append(feedVideos, feedVideo{title: title, createdAt: createdAt})
	// 由新到舊
	for i := 1; i < len(feedVideos); i++ {
		for j := i; j > 0 && feedVideos[j].createdAt > feedVideos[j-1].createdAt; j-- {
			feedVideos[j], feedVideos[j-1] = feedVideos[j-1], feedVideos[j]
		}
	}
	return nil
}

func theFeedShouldListFirst(title string) error {
	if len(feedVideos) == 0 {
		return fmt.Errorf("feed is empty")
	}
	if feedVideos[0].title != title {
		return fmt.Errorf("expected %s first, but got %s", title, feedVideos[0].title)
	}
	return nil
}
