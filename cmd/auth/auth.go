package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quickbites/admin-cli/internal/api"
	authflow "github.com/quickbites/admin-cli/internal/auth"
	"github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/format"
	"github.com/quickbites/admin-cli/internal/session"
)

// maxOTPAttempts bounds the interactive verification loop
const maxOTPAttempts = 3

// AuthCmd represents the auth command
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long: `Authentication commands for QuickBites Admin.

Login is a two-step flow: an OTP is sent to the given mobile number,
and verifying it establishes the admin session.`,
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login with a mobile number and OTP",
	Long:  "Request a one-time password for a mobile number and verify it to start a session",
	RunE:  runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and discard the stored session",
	Long:  "Remove the stored session token and cached profile",
	RunE:  runLogout,
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long:  "Display the current session and the operator it belongs to",
	RunE:  runStatus,
}

func runLogin(cmd *cobra.Command, args []string) error {
	mobile, _ := cmd.Flags().GetString("mobile")

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)
	flow := authflow.NewFlow(client, store)

	ctx := cmd.Context()
	reader := bufio.NewReader(os.Stdin)

	if mobile == "" {
		var err error
		mobile, err = promptLine(reader, "Mobile number: ")
		if err != nil {
			return err
		}
	}

	if err := flow.SendOTP(ctx, mobile); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	fmt.Printf("OTP sent to %s\n", flow.Mobile())

	for attempt := 0; attempt < maxOTPAttempts; attempt++ {
		otp, err := promptOTP(reader)
		if err != nil {
			return err
		}

		// Entering "change" restarts with a different number.
		if strings.EqualFold(otp, "change") {
			flow.ChangeNumber()
			mobile, err = promptLine(reader, "Mobile number: ")
			if err != nil {
				return err
			}
			if err := flow.SendOTP(ctx, mobile); err != nil {
				return fmt.Errorf("failed to send OTP: %w", err)
			}
			fmt.Printf("OTP sent to %s\n", flow.Mobile())
			attempt = -1
			continue
		}

		if err := flow.Verify(ctx, otp); err != nil {
			format.PrintError("%s", err.Error())
			continue
		}

		user := store.User()
		format.PrintSuccess("✓ Logged in as %s (%s)", user.Name, user.Role)
		return nil
	}

	return fmt.Errorf("too many failed attempts")
}

func runLogout(cmd *cobra.Command, args []string) error {
	store := session.NewFileStore()
	if !store.Authenticated() {
		return fmt.Errorf("not logged in")
	}

	name := store.User().Name
	if err := store.Clear(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	format.PrintSuccess("✓ Logged out %s", name)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	store := session.NewFileStore()

	if !store.Authenticated() {
		fmt.Println("Status: Not logged in")
		return nil
	}

	user := store.User()
	fmt.Printf("Status: Logged in as %s (%s)\n", user.Name, user.Role)
	fmt.Printf("Mobile: %s\n", user.Mobile)
	fmt.Printf("Server: %s\n", cfg.Server.URL)

	if exp, err := session.TokenExpiry(store.Token()); err == nil {
		if session.TokenExpired(store.Token()) {
			format.PrintWarning("Session expired at %s; login again", exp.Format("2006-01-02 15:04"))
		} else {
			fmt.Printf("Session: valid until %s\n", exp.Format("2006-01-02 15:04"))
		}
	} else {
		fmt.Println("Session: active")
	}

	return nil
}

// promptLine reads one trimmed line of input
func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptOTP reads the one-time password without echoing it when stdin
// is a terminal.
func promptOTP(reader *bufio.Reader) (string, error) {
	fmt.Print("OTP (or 'change' to use another number): ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read OTP: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read OTP: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	loginCmd.Flags().StringP("mobile", "m", "", "Mobile number to login with")

	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
}
