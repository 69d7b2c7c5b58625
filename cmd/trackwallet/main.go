// Command trackwallet is a terminal client for the TrackWallet API:
// expenses, monthly limits, loans, investments and the user profile.
//
// Configuration comes from the environment or a .env file; the bearer
// token is read from ACCESS_TOKEN or the file written by `trackwallet login`.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"trackwallet/internal/api"
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/params"
	"trackwallet/internal/api/primitives"
	"trackwallet/internal/insights"
	"trackwallet/pkg/auth"
	"trackwallet/pkg/config"
	"trackwallet/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/term"
)

const usage = `Usage: trackwallet <command> [flags]

Commands:
  login    store an access token and register the profile
  whoami   show the authenticated user
  expense  list | add | delete
  limit    show | set
  loan     list | add | delete
  invest   list | add | close | delete
  profile  show | update
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries everything a command needs.
type app struct {
	cfg     *config.Config
	gateway *api.Gateway
	token   *auth.TokenInfo
}

// userID is the authenticated user's identity-provider subject.
func (a *app) userID() primitives.UserID {
	return primitives.UserID(a.token.Subject)
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		return err
	}
	defer logger.Sync()

	gateway := api.New(primitives.URLString(cfg.API.BaseURL), httpClient(cfg))
	a := &app{cfg: cfg, gateway: gateway}

	command, rest := args[0], args[1:]
	if command == "login" {
		return a.login(rest)
	}

	// Everything else requires a live token.
	info, err := auth.Inspect(cfg.Auth.AccessToken)
	if err != nil {
		return fmt.Errorf("not logged in, run `trackwallet login`: %w", err)
	}
	if info.Expired(time.Now()) {
		return fmt.Errorf("access token expired, run `trackwallet login` again")
	}
	a.token = info
	gateway.SetAccessToken(cfg.Auth.AccessToken)

	switch command {
	case "whoami":
		return a.whoami()
	case "expense":
		return a.expense(rest)
	case "limit":
		return a.limit(rest)
	case "loan":
		return a.loan(rest)
	case "invest":
		return a.invest(rest)
	case "profile":
		return a.profile(rest)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func httpClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.API.Timeout}
}

func (a *app) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	tokenFlag := fs.String("token", "", "Access token (prompts without echo if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token := *tokenFlag
	if token == "" {
		fmt.Fprint(os.Stdout, "Access token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stdout)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	info, err := auth.Inspect(token)
	if err != nil {
		return err
	}
	if info.Expired(time.Now()) {
		return fmt.Errorf("token is already expired")
	}

	if err := os.MkdirAll(filepath.Dir(a.cfg.Auth.TokenFile), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(a.cfg.Auth.TokenFile, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	// Register the profile so the backend knows this user; the endpoint
	// upserts, so repeat logins are harmless.
	a.gateway.SetAccessToken(token)
	a.token = info
	ctx := context.Background()
	_, err = a.gateway.UserService.AddUser(ctx, params.AddUserParams{
		UserID:         primitives.UserID(info.Subject),
		Name:           info.Name,
		Email:          info.Email,
		ProfilePicture: primitives.URLString(info.Picture),
	})
	if err != nil {
		logger.Warn("profile registration failed", zap.Error(err))
		fmt.Println("Logged in, but profile registration failed; it will retry on next use.")
		return nil
	}

	fmt.Printf("Logged in as %s <%s>\n", info.Name, info.Email)
	return nil
}

func (a *app) whoami() error {
	user, err := a.gateway.UserService.GetUser(context.Background(), a.userID())
	if err != nil {
		return somethingWentWrong(err)
	}
	fmt.Printf("%s <%s>\nid: %s\n", user.Name, user.Email, user.UserID)
	return nil
}

func (a *app) expense(args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		fs := flag.NewFlagSet("expense list", flag.ContinueOnError)
		monthFlag := fs.String("month", "", "Month to list, YYYY-MM (default: current)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		month, err := parseMonth(*monthFlag)
		if err != nil {
			return err
		}
		return a.expenseList(month)

	case "add":
		fs := flag.NewFlagSet("expense add", flag.ContinueOnError)
		amount := fs.Float64("amount", 0, "Amount spent")
		description := fs.String("description", "", "What the money went to")
		dateFlag := fs.String("date", "", "Date, YYYY-MM-DD (default: today)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := validAmount(*amount); err != nil {
			return err
		}
		date, err := parseDate(*dateFlag)
		if err != nil {
			return err
		}
		var desc *string
		if *description != "" {
			desc = description
		}
		expense, err := a.gateway.ExpenseService.AddExpense(context.Background(), params.AddExpenseParams{
			UserID:      a.userID(),
			Amount:      *amount,
			Description: desc,
			Date:        primitives.NewUnixTimestampString(date),
		})
		if err != nil {
			return somethingWentWrong(err)
		}
		fmt.Printf("Added expense %s (%.2f)\n", expense.ID, expense.Amount)
		return nil

	case "delete":
		fs := flag.NewFlagSet("expense delete", flag.ContinueOnError)
		id := fs.String("id", "", "Expense id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing -id")
		}
		if err := a.gateway.ExpenseService.DeleteExpense(context.Background(), primitives.ExpenseID(*id)); err != nil {
			return somethingWentWrong(err)
		}
		fmt.Println("Expense deleted")
		return nil

	default:
		return fmt.Errorf("usage: trackwallet expense list|add|delete")
	}
}

func (a *app) expenseList(month time.Time) error {
	ctx := context.Background()
	expenses, err := a.gateway.ExpenseService.GetExpenseByUser(ctx, params.GetUserExpensesParams{
		UserID: a.userID(),
		Date:   primitives.NewUnixTimestampString(month),
	})
	if err != nil {
		return somethingWentWrong(err)
	}

	limit, err := a.monthlyLimitFor(ctx, month)
	if err != nil {
		// A missing limit must not hide the list; render without it.
		logger.Debug("monthly limit lookup failed", zap.Error(err))
		limit = nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tDESCRIPTION\tID")
	for _, e := range expenses {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", formatDate(e.Date), e.Amount, strOrDash(e.Description), e.ID)
	}
	w.Flush()

	overview := insights.OverviewForMonth(expenses, limit)
	fmt.Printf("\nTotal spend: %.2f\n", overview.Total)
	if overview.HasLimit {
		fmt.Printf("Monthly limit: %.2f (%.0f%% used, %.2f remaining)\n",
			overview.Limit, overview.Percent, overview.Remaining)
	} else {
		fmt.Println("Monthly limit: not set")
	}
	return nil
}

func (a *app) monthlyLimitFor(ctx context.Context, month time.Time) (*models.MonthlyLimit, error) {
	limit, err := a.gateway.MonthlyLimitService.GetMonthlyLimitByUserID(ctx, params.GetMonthlyLimitParams{
		UserID: a.userID(),
		Month:  primitives.Month(month.Month()),
		Year:   primitives.Year(month.Year()),
	})
	if err != nil {
		return nil, err
	}
	return &limit, nil
}

func (a *app) limit(args []string) error {
	sub, rest := subcommand(args)
	fs := flag.NewFlagSet("limit "+sub, flag.ContinueOnError)
	monthFlag := fs.String("month", "", "Month, YYYY-MM (default: current)")
	amount := fs.Float64("amount", 0, "Limit amount (set only)")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	month, err := parseMonth(*monthFlag)
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch sub {
	case "show":
		limit, err := a.monthlyLimitFor(ctx, month)
		if err != nil {
			return somethingWentWrong(err)
		}
		fmt.Printf("Limit for %s: %.2f\n", month.Format("January 2006"), limit.Limit)
		return nil

	case "set":
		if err := validAmount(*amount); err != nil {
			return err
		}
		// Update in place when the month already has a limit record.
		if existing, err := a.monthlyLimitFor(ctx, month); err == nil && existing.ID != "" {
			_, err := a.gateway.MonthlyLimitService.UpdateMonthlyLimit(ctx, params.UpdateMonthlyLimitParams{
				ID:    existing.ID,
				Limit: amount,
			})
			if err != nil {
				return somethingWentWrong(err)
			}
			fmt.Println("Limit updated")
			return nil
		}
		_, err := a.gateway.MonthlyLimitService.AddMonthlyLimit(ctx, params.AddMonthlyLimitParams{
			UserID: a.userID(),
			Limit:  *amount,
			Month:  primitives.Month(month.Month()),
			Year:   primitives.Year(month.Year()),
		})
		if err != nil {
			return somethingWentWrong(err)
		}
		fmt.Println("Limit set")
		return nil

	default:
		return fmt.Errorf("usage: trackwallet limit show|set")
	}
}

func (a *app) loan(args []string) error {
	sub, rest := subcommand(args)
	ctx := context.Background()

	switch sub {
	case "list":
		loans, err := a.gateway.LoanService.GetLoanByUserID(ctx, a.userID())
		if err != nil {
			return somethingWentWrong(err)
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tAMOUNT\tDEADLINE\tID")
		for _, l := range loans {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n", l.Name, l.LoanType, l.Amount, formatDate(l.DeadLine), l.ID)
		}
		w.Flush()

		pos := insights.Loans(loans)
		fmt.Printf("\nGiven: %.2f  Borrowed: %.2f  ", pos.TotalGiven, pos.TotalBorrowed)
		if pos.Net >= 0 {
			fmt.Printf("Net: %.2f (in credit)\n", pos.Net)
		} else {
			fmt.Printf("Net: %.2f (owed)\n", pos.Net)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("loan add", flag.ContinueOnError)
		name := fs.String("name", "", "Counterparty or purpose")
		amount := fs.Float64("amount", 0, "Loan amount")
		loanType := fs.String("type", "given", "given or taken")
		deadline := fs.String("deadline", "", "Deadline, YYYY-MM-DD")
		note := fs.String("note", "", "Optional note")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("missing -name")
		}
		if err := validAmount(*amount); err != nil {
			return err
		}
		var lt models.LoanType
		switch strings.ToLower(*loanType) {
		case "given":
			lt = models.LoanTypeGiven
		case "taken":
			lt = models.LoanTypeTaken
		default:
			return fmt.Errorf("-type must be given or taken")
		}
		due, err := parseDate(*deadline)
		if err != nil {
			return err
		}
		var notePtr *string
		if *note != "" {
			notePtr = note
		}
		loan, err := a.gateway.LoanService.AddLoan(ctx, params.AddLoanParams{
			UserID:   a.userID(),
			Name:     *name,
			Amount:   *amount,
			DeadLine: primitives.NewUnixTimestampString(due),
			LoanType: lt,
			Note:     notePtr,
		})
		if err != nil {
			return somethingWentWrong(err)
		}
		fmt.Printf("Added loan %s\n", loan.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("loan delete", flag.ContinueOnError)
		id := fs.String("id", "", "Loan id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing -id")
		}
		if err := a.gateway.LoanService.DeleteLoan(ctx, primitives.LoanID(*id)); err != nil {
			return somethingWentWrong(err)
		}
		fmt.Println("Loan deleted")
		return nil

	default:
		return fmt.Errorf("usage: trackwallet loan list|add|delete")
	}
}

func (a *app) invest(args []string) error {
	sub, rest := subcommand(args)
	ctx := context.Background()

	switch sub {
	case "list":
		fs := flag.NewFlagSet("invest list", flag.ContinueOnError)
		statusFlag := fs.String("status", "active", "active or completed")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var status models.InvestStatus
		switch strings.ToLower(*statusFlag) {
		case "active":
			status = models.InvestStatusActive
		case "completed":
			status = models.InvestStatusCompleted
		default:
			return fmt.Errorf("-status must be active or completed")
		}
		investments, err := a.gateway.InvestService.GetInvestByUserID(ctx, params.GetInvestParams{
			UserID: a.userID(),
			Status: status,
		})
		if err != nil {
			return somethingWentWrong(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tAMOUNT\tRETURN\tID")
		for _, inv := range investments {
			roiText := "n/a"
			if roi, ok := insights.ReturnOnInvestment(inv); ok {
				roiText = fmt.Sprintf("%.1f%%", roi)
			}
			fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", inv.Name, inv.Amount, roiText, inv.ID)
		}
		w.Flush()

		if status == models.InvestStatusCompleted {
			fmt.Printf("\nAverage return: %.1f%%\n", insights.AverageReturn(investments))
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("invest add", flag.ContinueOnError)
		name := fs.String("name", "", "Investment name")
		amount := fs.Float64("amount", 0, "Amount invested")
		note := fs.String("note", "", "Note")
		start := fs.String("start", "", "Start date, YYYY-MM-DD (default: today)")
		end := fs.String("end", "", "End date, YYYY-MM-DD (optional)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("missing -name")
		}
		if err := validAmount(*amount); err != nil {
			return err
		}
		startDate, err := parseDate(*start)
		if err != nil {
			return err
		}
		p := params.AddInvestParams{
			UserID:    a.userID(),
			Name:      *name,
			Amount:    *amount,
			Note:      *note,
			StartDate: primitives.NewUnixTimestampString(startDate),
		}
		if *end != "" {
			endDate, err := parseDate(*end)
			if err != nil {
				return err
			}
			ts := primitives.NewUnixTimestampString(endDate)
			p.EndDate = &ts
		}
		inv, err := a.gateway.InvestService.AddInvest(ctx, p)
		if err != nil {
			return somethingWentWrong(err)
		}
		fmt.Printf("Added investment %s\n", inv.ID)
		return nil

	case "close":
		fs := flag.NewFlagSet("invest close", flag.ContinueOnError)
		id := fs.String("id", "", "Investment id")
		earned := fs.Float64("earned", 0, "Total amount received back")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing -id")
		}
		if math.IsNaN(*earned) || *earned < 0 {
			return fmt.Errorf("-earned must be zero or positive")
		}
		completed := models.InvestStatusCompleted
		ts := primitives.NewUnixTimestampString(time.Now())
		inv, err := a.gateway.InvestService.UpdateInvest(ctx, params.UpdateInvestParams{
			ID:      primitives.InvestID(*id),
			Status:  &completed,
			Earned:  earned,
			EndDate: &ts,
		})
		if err != nil {
			return somethingWentWrong(err)
		}
		if roi, ok := insights.ReturnOnInvestment(inv); ok {
			fmt.Printf("Closed %s with %.1f%% return\n", inv.Name, roi)
		} else {
			fmt.Printf("Closed %s\n", inv.Name)
		}
		return nil

	case "delete":
		fs := flag.NewFlagSet("invest delete", flag.ContinueOnError)
		id := fs.String("id", "", "Investment id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing -id")
		}
		if err := a.gateway.InvestService.DeleteInvest(ctx, primitives.InvestID(*id)); err != nil {
			return somethingWentWrong(err)
		}
		fmt.Println("Investment deleted")
		return nil

	default:
		return fmt.Errorf("usage: trackwallet invest list|add|close|delete")
	}
}

func (a *app) profile(args []string) error {
	sub, rest := subcommand(args)
	ctx := context.Background()

	switch sub {
	case "show":
		return a.whoami()

	case "update":
		fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
		name := fs.String("name", "", "Display name")
		picture := fs.String("picture", "", "Profile picture URL")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		p := params.UpdateUserParams{UserID: a.userID()}
		if *name != "" {
			p.Name = name
		}
		if *picture != "" {
			u := primitives.URLString(*picture)
			p.ProfilePicture = &u
		}
		if p.Name == nil && p.ProfilePicture == nil {
			return fmt.Errorf("nothing to update, pass -name or -picture")
		}
		user, err := a.gateway.UserService.UpdateUser(ctx, p)
		if err != nil {
			return somethingWentWrong(err)
		}
		fmt.Printf("Profile updated: %s\n", user.Name)
		return nil

	default:
		return fmt.Errorf("usage: trackwallet profile show|update")
	}
}

func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

// somethingWentWrong is the CLI analog of the toast: the user gets a short
// generic message, the detail goes to the log.
func somethingWentWrong(err error) error {
	logger.Error("request failed", zap.Error(err))
	return fmt.Errorf("something went wrong: %w", err)
}

func validAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("amount must be a positive number")
	}
	return nil
}

func parseMonth(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func formatDate(ts primitives.UnixTimestampString) string {
	t, err := ts.Time()
	if err != nil {
		return string(ts)
	}
	return t.UTC().Format("2006-01-02")
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
