// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package view

import "strings"

// BotCommand is one entry of the companion chat bot's command list. The
// listing is informational only; FileLens does not run the bot.
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

var botCommands = []BotCommand{
	{Command: "/start", Description: "Show the welcome and help message"},
	{Command: "/help", Description: "Show usage help"},
	{Command: "/analyze <filename>", Description: "Analyze a specific filename"},
	{Command: "/stats", Description: "Show your analysis history"},
}

// BotCommands returns a copy of the bot command listing.
func BotCommands() []BotCommand {
	out := make([]BotCommand, len(botCommands))
	copy(out, botCommands)
	return out
}

// RenderCommands draws the bot command listing.
func RenderCommands() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("🤖 Bot Commands"))
	sb.WriteString("\n")
	for _, c := range botCommands {
		sb.WriteString(codeStyle.Width(22).Render(c.Command))
		sb.WriteString(dimStyle.Render(c.Description))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("Forward a file or send a filename to the bot to analyze it."))
	return sb.String()
}
