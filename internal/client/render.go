package client

import (
	"fmt"
	"io"
	"strings"
)

// Render выводит текстовый экран дашборда
func Render(w io.Writer, s State) {
	var b strings.Builder

	officer := "loading..."
	if s.Officer != nil {
		officer = fmt.Sprintf("%s #%s (%s)", s.Officer.Name, s.Officer.Badge, s.Officer.Unit)
	}
	link := "OFFLINE"
	if s.Connected {
		link = "ONLINE"
	}
	fmt.Fprintf(&b, "%s | %s | mission %s | threat %s\n", officer, link, s.MissionTime(), s.ThreatLevel())

	b.WriteString("Routes:\n")
	for _, r := range s.Routes {
		fmt.Fprintf(&b, "  %-12s %3d%% %-9s %3d min %.1f mi\n", r.Name, r.SafetyScore, r.SafetyBand(), r.EstimatedTime, r.Distance)
	}

	stale := ""
	if s.AlertsStale {
		stale = " (refreshing)"
	}
	fmt.Fprintf(&b, "Alerts%s:\n", stale)
	for _, a := range s.Alerts {
		fmt.Fprintf(&b, "  [%s] %s: %s @ %s\n", strings.ToUpper(string(a.Priority)), a.Type, a.Message, a.Location)
	}

	b.WriteString("Emergency services:\n")
	for _, svc := range s.Services {
		availability := "available"
		if !svc.IsAvailable {
			availability = "busy"
		}
		fmt.Fprintf(&b, "  %-16s %-6s %.1f mi %s\n", svc.Name, svc.Type, svc.Distance, availability)
	}

	if s.IncomingEmergency != nil {
		fmt.Fprintf(&b, "!! EMERGENCY: %s @ %s  [d] dismiss\n", s.IncomingEmergency.Message, s.IncomingEmergency.Location)
	}
	switch {
	case s.EmergencySending:
		b.WriteString("Sending emergency alert...\n")
	case s.EmergencyPrompt:
		b.WriteString("EMERGENCY ALERT: broadcast to all units and dispatch? [y] confirm [n] cancel\n")
	}

	_, _ = io.WriteString(w, b.String())
}
