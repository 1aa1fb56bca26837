package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
	"github.com/StormyDevil/azure-communication-services-solution/internal/chat"
	"github.com/StormyDevil/azure-communication-services-solution/internal/config"
	"github.com/StormyDevil/azure-communication-services-solution/internal/email"
	"github.com/StormyDevil/azure-communication-services-solution/internal/logging"
	"github.com/StormyDevil/azure-communication-services-solution/internal/secrets"
	"github.com/StormyDevil/azure-communication-services-solution/internal/secrets/keyvault"
	"github.com/StormyDevil/azure-communication-services-solution/internal/sms"
	"github.com/alecthomas/kingpin/v2"
)

const banner = `
    +-----------------------------------------------------------+
    |   Azure Communication Services - Go Sample                |
    +-----------------------------------------------------------+
`

func printSection(title string) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("  %s\n", title)
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))
}

// printResult pretty-prints an operation envelope.
func printResult(v any) {
	b, err := json.MarshalIndent(v, "   ", "  ")
	if err != nil {
		fmt.Printf("   (unprintable result: %v)\n", err)
		return
	}
	fmt.Printf("   %s\n", b)
}

func main() {
	app := kingpin.New("demo", "Walks through the SMS, email and chat services against a live Communication Services resource")
	smsFrom := app.Flag("sms-from", "Provisioned sender phone number; enables a live SMS send").String()
	smsTo := app.Flag("sms-to", "Recipient phone numbers for the live SMS send").Strings()
	emailFrom := app.Flag("email-from", "Verified sender address; enables a live email send").String()
	emailTo := app.Flag("email-to", "Recipient address for the live email send").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx := context.Background()

	fmt.Print(banner)

	logger, err := logging.New()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration, falling back to Key Vault for the credentials.
	cfg := config.New()
	cfg.ResolveACS(ctx, func(vaultURL string) (secrets.Source, error) {
		return keyvault.New(vaultURL)
	}, logger)

	if cfg.ACS.ConnectionString == "" {
		fmt.Println("Error: ACS_CONNECTION_STRING not configured")
		fmt.Println("   Set the environment variable or KEY_VAULT_URL")
		os.Exit(1)
	}

	cs, err := acs.ParseConnectionString(cfg.ACS.ConnectionString)
	if err != nil {
		fmt.Printf("Error: invalid connection string: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration loaded")
	if cfg.ACS.Endpoint != "" {
		fmt.Printf("   Endpoint: %s\n", cfg.ACS.Endpoint)
	} else {
		fmt.Println("   Endpoint: Using connection string")
	}

	transport := acs.NewHMACClient(cs)

	// ------------------------------------------------------------------
	// SMS
	// ------------------------------------------------------------------
	printSection("SMS Service Demo")

	smsSvc := sms.NewService(sms.NewRESTClient(transport))

	fmt.Println("SMS Service initialized")
	if *smsFrom != "" && len(*smsTo) > 0 {
		fmt.Printf("   Sending SMS from %s to %d recipient(s)...\n", *smsFrom, len(*smsTo))
		for _, res := range smsSvc.SendBulk(ctx, *smsFrom, *smsTo, "Hello from Azure Communication Services!", sms.DefaultOptions()) {
			printResult(res)
		}
	} else {
		fmt.Println("   To send SMS, you need:")
		fmt.Println("   1. A provisioned phone number (pass it via --sms-from)")
		fmt.Println("   2. Valid recipient phone numbers (--sms-to, repeatable)")
	}

	// ------------------------------------------------------------------
	// Email
	// ------------------------------------------------------------------
	printSection("Email Service Demo")

	emailSvc := email.NewService(email.NewRESTClient(transport), cfg.Email.PollInterval)

	fmt.Println("Email Service initialized")
	if *emailFrom != "" && *emailTo != "" {
		fmt.Printf("   Sending email from %s to %s...\n", *emailFrom, *emailTo)
		res := emailSvc.Send(ctx, email.Message{
			SenderAddress: *emailFrom,
			To:            *emailTo,
			Subject:       "Welcome!",
			PlainText:     "Hello from Azure Communication Services!",
		})
		printResult(res)
	} else {
		fmt.Println("   To send email, you need:")
		fmt.Println("   1. An Email Communication Service resource")
		fmt.Println("   2. A verified domain (pass a sender via --email-from, recipient via --email-to)")
	}

	// ------------------------------------------------------------------
	// Chat
	// ------------------------------------------------------------------
	printSection("Chat Service Demo")

	if cfg.ACS.Endpoint != "" {
		session := chat.NewSession(cfg.ACS.Endpoint, chat.NewIdentityRESTClient(transport))

		fmt.Println("Chat Service initialized")
		fmt.Println()
		fmt.Println("Creating chat user...")

		userRes := session.CreateUserAndToken(ctx)
		if userRes.Success {
			fmt.Printf("   User created: %.50s...\n", userRes.Data.UserID)
			fmt.Printf("   Token expires: %s\n", userRes.Data.ExpiresOn)

			session.InitializeChatClient(userRes.Data.Token)
			fmt.Println("   Chat client initialized")

			threadRes := session.CreateThread(ctx, "Demo thread", []string{userRes.Data.UserID})
			if threadRes.Success {
				fmt.Printf("   Thread created: %s\n", threadRes.Data.ThreadID)

				msgRes := session.SendMessage(ctx, threadRes.Data.ThreadID, "Hello from the demo!", "Demo User")
				printResult(msgRes)

				listRes := session.GetMessages(ctx, threadRes.Data.ThreadID, 10)
				if listRes.Success {
					fmt.Printf("   Thread now holds %d message(s)\n", listRes.Data.Count)
				} else {
					fmt.Printf("   Error: %s\n", listRes.Error)
				}
			} else {
				fmt.Printf("   Error: %s\n", threadRes.Error)
			}
		} else {
			fmt.Printf("   Error: %s\n", userRes.Error)
		}
	} else {
		fmt.Println("Chat Service requires ACS_ENDPOINT to be set")
	}

	// ------------------------------------------------------------------
	// Summary
	// ------------------------------------------------------------------
	printSection("Summary")

	fmt.Println("Available Services:")
	fmt.Println("   SMS Service - Send text messages")
	fmt.Println("   Email Service - Send transactional emails")
	fmt.Println("   Chat Service - Real-time messaging")
	fmt.Println()
	fmt.Println("Next Steps:")
	fmt.Println("   1. Provision phone numbers for SMS")
	fmt.Println("   2. Link an email domain to the resource")
	fmt.Println("   3. Wire delivery reports through Event Grid")
	fmt.Println()
	fmt.Println("Documentation: https://learn.microsoft.com/azure/communication-services/")
}
