// Package ui implements an interactive terminal dashboard using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow over the translation library:
//  1. [PodcastListView] : Browse the registered podcasts
//  2. [TranslationListView] : Inspect the translation jobs of one podcast
//  3. [AuditView] : Monitor a live RSS feed audit sweep
//  4. [AuditResultView] : Display the audit tally and unhealthy feeds
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Audit progress flows through a channel from the flow engine, providing non-blocking status reporting during sweeps.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, a, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
