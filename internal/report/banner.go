package report

import "strings"

// Banner widths. Wider terminals get a larger banner.
const (
	wideBannerMin   = 90
	mediumBannerMin = 60
)

const tagline = "Real-time PostgreSQL Monitor"

var wideArt = []string{
	`  _____     _     _     _____                   `,
	` |_   _|_ _| |__ | | __|_   _| __ __ _  ___ ___ `,
	`   | |/ _' | '_ \| |/ _ \| || '__/ _' |/ __/ _ \`,
	`   | | (_| | |_) | |  __/| || | | (_| | (_|  __/`,
	`   |_|\__,_|_.__/|_|\___||_||_|  \__,_|\___\___|`,
}

// banner renders the closing banner for a terminal of the given width.
func (r *Reporter) banner(width int) string {
	switch {
	case width >= wideBannerMin:
		var b strings.Builder
		for _, line := range wideArt {
			b.WriteString(r.styles.command.Render(line))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(r.styles.tagline.Render("      " + tagline))
		return b.String()
	case width >= mediumBannerMin:
		return r.styles.banner.Render("T A B L E   T R A C E")
	default:
		return r.styles.command.Render("Table Trace CLI")
	}
}
