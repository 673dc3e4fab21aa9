package mailer

import (
	"fmt"
	"html"
	"strings"
)

// confirmationHTML renders the fixed confirmation template. The layout is
// static copy, not a template engine; only the four booking fields vary.
func confirmationHTML(name, service, date string, times []string) string {
	if name == "" {
		name = "there"
	}
	timesDisplay := strings.Join(times, ", ")
	if timesDisplay == "" {
		timesDisplay = "—"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Booking Confirmed</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif; background-color: #fafaf9; color: #1c1917;">
  <div style="max-width: 560px; margin: 0 auto; padding: 40px 24px;">
    <div style="background: white; border-radius: 24px; padding: 40px; border: 1px solid #f5f5f4; box-shadow: 0 1px 3px rgba(0,0,0,0.06);">
      <div style="text-align: center; margin-bottom: 32px;">
        <div style="width: 64px; height: 64px; background: #8cae8c; border-radius: 50%%; margin: 0 auto 20px; display: flex; align-items: center; justify-content: center;">
          <span style="color: white; font-size: 28px;">✓</span>
        </div>
        <h1 style="margin: 0; font-size: 28px; font-weight: 600; color: #1c1917; font-family: Georgia, serif;">Booking Confirmed</h1>
      </div>
      <p style="margin: 0 0 24px; font-size: 16px; line-height: 1.6; color: #44403c;">
        Hi %s,
      </p>
      <p style="margin: 0 0 28px; font-size: 16px; line-height: 1.6; color: #44403c;">
        Thank you for booking with Style Forage. Here are your session details:
      </p>
      <div style="background: #fafaf9; border-radius: 16px; padding: 24px; margin-bottom: 28px; border: 1px solid #f5f5f4;">
        <table style="width: 100%%; border-collapse: collapse;">
          <tr>
            <td style="padding: 8px 0; font-size: 12px; font-weight: 600; color: #78716c; text-transform: uppercase; letter-spacing: 0.05em;">Service</td>
            <td style="padding: 8px 0; font-size: 16px; font-weight: 600; color: #1c1917; text-align: right;">%s</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; font-size: 12px; font-weight: 600; color: #78716c; text-transform: uppercase; letter-spacing: 0.05em;">Date</td>
            <td style="padding: 8px 0; font-size: 16px; font-weight: 600; color: #1c1917; text-align: right;">%s</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; font-size: 12px; font-weight: 600; color: #78716c; text-transform: uppercase; letter-spacing: 0.05em;">Your availability</td>
            <td style="padding: 8px 0; font-size: 16px; font-weight: 600; color: #1c1917; text-align: right;">%s</td>
          </tr>
        </table>
      </div>
      <p style="margin: 0 0 16px; font-size: 15px; line-height: 1.6; color: #44403c;">
        <strong>What happens next?</strong> I’ll confirm your exact time and send any prep notes before your session.
      </p>
      <p style="margin: 0; font-size: 15px; line-height: 1.6; color: #44403c;">
        If you have questions, reply to this email or reach out anytime.
      </p>
      <p style="margin: 28px 0 0; font-size: 15px; line-height: 1.6; color: #78716c;">
        — Roslyn<br>
        <span style="color: #8cae8c; font-weight: 600;">Style Forage</span>
      </p>
    </div>
    <p style="margin: 24px 0 0; font-size: 12px; color: #a8a29e; text-align: center;">
      You received this email because you booked a session at styleforage.com
    </p>
  </div>
</body>
</html>`,
		html.EscapeString(name),
		html.EscapeString(service),
		html.EscapeString(date),
		html.EscapeString(timesDisplay),
	)
}
