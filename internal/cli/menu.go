package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"vintedmanager/internal/domain"
	applog "vintedmanager/internal/log"
	"vintedmanager/internal/services"
	"vintedmanager/internal/validate"
)

// App is the interactive menu. It reads answers line by line from In and
// writes everything to Out.
type App struct {
	Inv      *services.InventoryService
	Settings *services.SettingsService
	Metrics  *services.MetricsService
	Currency string

	in  *bufio.Scanner
	out io.Writer
}

func New(inv *services.InventoryService, settings *services.SettingsService, metrics *services.MetricsService,
	currency string, in io.Reader, out io.Writer) *App {
	return &App{
		Inv:      inv,
		Settings: settings,
		Metrics:  metrics,
		Currency: currency,
		in:       newScanner(in),
		out:      out,
	}
}

// maxLine caps a single answer; pasted descriptions can exceed the
// scanner's 64 KiB default.
const maxLine = 1 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return sc
}

// Run loops over the main menu until the user quits or input ends.
func (a *App) Run() error {
	for {
		fmt.Fprintln(a.out, "\n=== MAIN MENU ===")
		fmt.Fprintln(a.out, "1. Add a product")
		fmt.Fprintln(a.out, "2. Edit/Delete a product")
		fmt.Fprintln(a.out, "3. View stock")
		fmt.Fprintln(a.out, "4. View metrics")
		fmt.Fprintln(a.out, "5. Set tax rate")
		fmt.Fprintln(a.out, "6. Quit")
		fmt.Fprintln(a.out, "7. View sales")

		choice, err := a.ask("\nYour choice: ")
		if err != nil {
			return eofOK(err)
		}

		switch choice {
		case "1":
			err = a.addProduct()
		case "2":
			err = a.editProduct()
		case "3":
			err = a.viewStock()
		case "4":
			err = a.viewMetrics()
		case "5":
			err = a.setTaxRate()
		case "6", "q":
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		case "7":
			err = a.viewSales()
		default:
			fmt.Fprintln(a.out, "Unknown choice.")
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// storage failures are already logged by the services
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func eofOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ask prints prompt and returns the next line, or io.EOF once input ends.
func (a *App) ask(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// askUntil re-prompts until parse accepts the answer.
func (a *App) askUntil(prompt, hint string, parse func(string) error) (string, error) {
	for {
		s, err := a.ask(prompt)
		if err != nil {
			return "", err
		}
		if err := parse(s); err != nil {
			fmt.Fprintf(a.out, "Error: %s\n", hint)
			continue
		}
		return s, nil
	}
}

func amountOK(s string) error {
	_, err := validate.Amount(s)
	return err
}

func dateOK(s string) error {
	_, err := validate.Date(s)
	return err
}

func (a *App) addProduct() error {
	fmt.Fprintln(a.out, "\n=== Add a product ===")
	var form services.ProductForm
	texts := []struct {
		dst    *string
		prompt string
	}{
		{&form.Type, "Type: "},
		{&form.Brand, "Brand: "},
		{&form.Size, "Size: "},
		{&form.Color, "Color: "},
		{&form.Condition, "Condition: "},
		{&form.Description, "Description: "},
	}
	for _, t := range texts {
		s, err := a.ask(t.prompt)
		if err != nil {
			return err
		}
		*t.dst = s
	}

	var err error
	if form.PurchaseDate, err = a.askUntil("Purchase date (DD/MM/YYYY): ", "please enter a date as DD/MM/YYYY", dateOK); err != nil {
		return err
	}
	const amountHint = "please enter a valid number (use a dot or a comma as decimal separator)"
	if form.PurchasePrice, err = a.askUntil("Purchase price: ", amountHint, amountOK); err != nil {
		return err
	}
	if form.EstimatedValue, err = a.askUntil("Estimated value: ", amountHint, amountOK); err != nil {
		return err
	}

	id, err := a.Inv.Create(form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product %d added.\n", id)
	return nil
}

func (a *App) editProduct() error {
	fmt.Fprintln(a.out, "\n=== Edit a product ===")
	if err := a.viewStock(); err != nil {
		return err
	}
	raw, err := a.ask("\nProduct ID: ")
	if err != nil {
		return err
	}
	id, ok := validate.ID(raw)
	if !ok {
		fmt.Fprintln(a.out, "Error: invalid product ID.")
		return nil
	}
	p, err := a.Inv.Get(id)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Fprintf(a.out, "No product with ID %d.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nWhat do you want to change?")
	for _, f := range domain.Fields {
		fmt.Fprintf(a.out, "%d. %s (%s)\n", int(f), f, a.fieldValue(p, f))
	}
	deleteChoice := len(domain.Fields) + 1
	fmt.Fprintf(a.out, "%d. Delete this product\n", deleteChoice)
	choice, err := a.ask("Your choice: ")
	if err != nil {
		return err
	}

	if choice == fmt.Sprint(deleteChoice) {
		confirm, err := a.ask("Really delete this product? (y/n): ")
		if err != nil {
			return err
		}
		if !validate.Yes(confirm) {
			return nil
		}
		if err := a.Inv.Delete(id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Product deleted.")
		return nil
	}

	f, ok := validate.Field(choice)
	if !ok {
		fmt.Fprintln(a.out, "Unknown choice.")
		return nil
	}
	prompt := fmt.Sprintf("New %s: ", strings.ToLower(f.String()))
	if f.Nullable() {
		prompt = fmt.Sprintf("New %s (empty to clear): ", strings.ToLower(f.String()))
	}
	value, err := a.ask(prompt)
	if err != nil {
		return err
	}

	err = a.Inv.UpdateFromInput(id, f, value)
	var inputErr *domain.InputError
	switch {
	case errors.As(err, &inputErr):
		applog.Info("product.update.rejected", map[string]any{"id": id, "field": inputErr.Field})
		fmt.Fprintln(a.out, "Error: invalid value.")
		return nil
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(a.out, "No product with ID %d.\n", id)
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(a.out, "Product updated.")
	return nil
}

func (a *App) viewStock() error {
	fmt.Fprintln(a.out, "\n=== Current stock ===")
	ps, err := a.Inv.ListInStock()
	if err != nil {
		return err
	}
	a.renderProducts(a.out, ps)
	return nil
}

// askPeriod returns nil for an empty answer (all time).
func (a *App) askPeriod() (*domain.Period, bool, error) {
	raw, err := a.ask("Month (MM/YYYY) for monthly figures, or Enter for all time: ")
	if err != nil {
		return nil, false, err
	}
	if raw == "" {
		return nil, true, nil
	}
	p, err := validate.Month(raw)
	if err != nil {
		fmt.Fprintln(a.out, "Error: please enter a month as MM/YYYY.")
		return nil, false, nil
	}
	return &p, true, nil
}

func (a *App) viewSales() error {
	fmt.Fprintln(a.out, "\n=== Sales ===")
	period, ok, err := a.askPeriod()
	if err != nil || !ok {
		return err
	}
	ps, err := a.Inv.ListSold(period)
	if err != nil {
		return err
	}
	a.renderProducts(a.out, ps)
	return nil
}

func (a *App) viewMetrics() error {
	fmt.Fprintln(a.out, "\n=== Metrics ===")
	period, ok, err := a.askPeriod()
	if err != nil || !ok {
		return err
	}

	actual, err := a.Metrics.Actual(period)
	if err != nil {
		return err
	}
	title := "All-time metrics:"
	if period != nil {
		title = fmt.Sprintf("Metrics for %s to %s:", period, period.End().Format(domain.DisplayLayout))
	}
	a.renderMetrics(a.out, title, actual)

	est, err := a.Metrics.Estimated()
	if err != nil {
		return err
	}
	a.renderMetrics(a.out, "Estimates for current stock:", est)
	fmt.Fprintf(a.out, "\nTax rate: %g%%\n", a.Settings.TaxRate())
	return nil
}

func (a *App) setTaxRate() error {
	raw, err := a.ask(fmt.Sprintf("New tax rate in %% (current %g): ", a.Settings.TaxRate()))
	if err != nil {
		return err
	}
	rate, err := validate.Amount(raw)
	if err != nil {
		fmt.Fprintln(a.out, "Error: please enter a valid number.")
		return nil
	}
	if err := a.Settings.SetTaxRate(rate); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Tax rate set to %g%%.\n", rate)
	return nil
}
