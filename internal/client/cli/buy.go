package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wpsaas/wpcloud/internal/provision"
)

// Buy walks the user through a plan purchase: pick a plan, name the domain,
// create a provider checkout session, and park the site record in the
// awaiting-payment state. The confirmation listener picks it up from there
// once the provider redirects the browser back.
func (a *App) Buy(ctx context.Context) error {
	fmt.Println("Available plans:")
	for _, p := range a.sessions.Plans() {
		fmt.Printf("  %-8s %-8s %d.%02d EUR/month\n", p.ID, p.Name, p.PriceEURCent/100, p.PriceEURCent%100)
	}

	planID, err := getSimpleText(a.reader, "Enter plan id", os.Stdout)
	if err != nil {
		return err
	}
	if _, ok := provision.PlanByID(planID); !ok {
		log.Printf("Unknown plan: %s", planID)
		return nil
	}

	domain, err := getSimpleText(a.reader, "Enter domain (leave empty to decide later)", os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.apiClient.CreateCheckoutSession(ctx, domain, planID)
	if err != nil {
		log.Printf("Error creating checkout session: %s", err.Error())
		return nil
	}

	now := time.Now().UTC()
	a.sessions.UpdateServer(ctx, func(prev provision.ServerRecord) provision.ServerRecord {
		prev.Domain = domain
		prev.PlanID = planID
		prev.Status = provision.StatusAwaitingPayment
		if prev.CreatedAt == nil {
			prev.CreatedAt = &now
		}
		return prev
	})

	fmt.Println("Open this URL in your browser to complete the payment:")
	fmt.Println("  " + session.URL)
	return nil
}

// Status prints the current site record for the signed-in user.
func (a *App) Status(ctx context.Context) error {
	rec := a.sessions.Server()

	domain := rec.Domain
	if domain == "" {
		domain = "(not chosen yet)"
	}

	fmt.Printf("Domain:    %s\n", domain)
	fmt.Printf("Plan:      %s\n", rec.PlanID)
	fmt.Printf("Status:    %s\n", rec.Status)
	if rec.SiteURL != "" {
		fmt.Printf("Site:      %s\n", rec.SiteURL)
		fmt.Printf("WP admin:  %s\n", rec.WpAdminURL)
	}
	if rec.LastPayment != nil {
		fmt.Printf("Last payment: %s (%s)\n", rec.LastPayment.Format(time.RFC3339), rec.PaymentProvider)
	}
	if rec.Status == provision.StatusAwaitingDNS {
		fmt.Printf("Point your registrar (%s) at:\n", rec.Registrar)
		for _, ns := range provision.DisplayNameservers(rec) {
			fmt.Println("  " + ns)
		}
	}
	return nil
}
