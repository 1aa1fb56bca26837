package main

import (
	"context"
	"fmt"
	"os"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
	"github.com/StormyDevil/azure-communication-services-solution/internal/config"
	"github.com/StormyDevil/azure-communication-services-solution/internal/email"
	"github.com/alecthomas/kingpin/v2"
)

const plainBody = "Hello!\n\nThis is a test email from Azure Communication Services.\n\nYour deployment is working correctly!\n\nBest regards,\nACS Sample Application"

const htmlBody = `
<html>
    <body style="font-family: Arial, sans-serif; padding: 20px;">
        <h1 style="color: #0078d4;">Azure Communication Services</h1>
        <p>Hello!</p>
        <p>This is a test email from <strong>Azure Communication Services</strong>.</p>
        <p style="color: green;">Your deployment is working correctly!</p>
        <hr>
        <p style="color: gray; font-size: 12px;">
            Sent from: ACS Sample Application
        </p>
    </body>
</html>
`

func main() {
	app := kingpin.New("testemail", "Sends a test email to verify the email service is working")
	recipient := app.Arg("recipient", "Recipient email address").Required().String()
	sender := app.Flag("sender", "Sender address; defaults to EMAIL_SENDER_ADDRESS").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx := context.Background()

	cfg := config.New()
	if cfg.ACS.ConnectionString == "" {
		fmt.Println("ACS_CONNECTION_STRING environment variable not set")
		os.Exit(1)
	}

	cs, err := acs.ParseConnectionString(cfg.ACS.ConnectionString)
	if err != nil {
		fmt.Printf("invalid connection string: %v\n", err)
		os.Exit(1)
	}

	from := *sender
	if from == "" {
		from = cfg.Email.SenderAddress
	}
	if from == "" {
		fmt.Println("no sender address configured; pass --sender or set EMAIL_SENDER_ADDRESS")
		os.Exit(1)
	}

	svc := email.NewService(email.NewRESTClient(acs.NewHMACClient(cs)), cfg.Email.PollInterval)

	fmt.Printf("Sending test email to: %s\n", *recipient)
	fmt.Printf("   From: %s\n", from)

	res := svc.Send(ctx, email.Message{
		SenderAddress: from,
		To:            *recipient,
		Subject:       "Azure Communication Services - Test Email",
		PlainText:     plainBody,
		HTML:          htmlBody,
	})

	if !res.Success {
		fmt.Printf("Failed to send email: %s\n", res.Error)
		os.Exit(1)
	}

	fmt.Println("Email sent successfully!")
	fmt.Printf("   Message ID: %s\n", res.Data.MessageID)
	fmt.Printf("   Status: %s\n", res.Data.Status)
}
