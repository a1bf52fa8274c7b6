// Package tui is the Bubble Tea platform that hosts the Pocket Bounty
// arcade. It maps terminal input to game actions, drives the fixed tick
// loop, renders the shared screen buffer, and performs the score and
// wallet side effects when a session reaches a terminal state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation step.
type TickMsg time.Time

// tickCmd schedules the next simulation tick. Non-positive rates fall
// back to the 60 Hz default.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
