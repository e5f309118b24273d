package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/polyglotfm/plx/internal/models"
)

var (
	_ list.Item = podcastItem{}
	_ list.Item = translationItem{}
)

// podcastItem wraps [models.Podcast] to implement [list.Item].
type podcastItem struct {
	podcast models.Podcast
}

func (i podcastItem) FilterValue() string { return i.podcast.Title }
func (i podcastItem) Title() string       { return i.podcast.Title }
func (i podcastItem) Description() string {
	desc := fmt.Sprintf("%d episodes", i.podcast.EpisodeCount)
	if i.podcast.OriginalLanguage != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.podcast.OriginalLanguage)
	}
	return desc
}

// translationItem wraps [models.Translation] to implement [list.Item].
type translationItem struct {
	translation models.Translation
}

func (i translationItem) FilterValue() string { return i.translation.TargetLanguage }
func (i translationItem) Title() string       { return i.translation.TargetLanguage }
func (i translationItem) Description() string {
	return fmt.Sprintf("%s • %d%%", i.translation.Status, i.translation.Progress)
}
