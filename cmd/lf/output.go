package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/leadflowhq/leadflow/internal/model"
	"github.com/leadflowhq/leadflow/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printLeadTable(lead *model.Lead) {
	fmt.Printf("ID:            %s\n", lead.ID)
	fmt.Printf("Name:          %s\n", lead.Name())
	fmt.Printf("Email:         %s\n", lead.Email)
	fmt.Printf("Phone:         %s\n", lead.Phone)
	fmt.Printf("Company:       %s\n", lead.Company)
	fmt.Printf("Location:      %s, %s\n", lead.City, lead.State)
	fmt.Printf("Source:        %s\n", lead.Source)
	fmt.Printf("Status:        %s\n", ui.RenderStatus(lead.Status))
	fmt.Printf("Score:         %d\n", lead.Score)
	fmt.Printf("Value:         %s\n", formatCurrency(lead.LeadValue))
	fmt.Printf("Qualified:     %t\n", lead.IsQualified)
	if lead.LastActivityAt != nil {
		fmt.Printf("Last Activity: %s\n", lead.LastActivityAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Created At:    %s\n", lead.CreatedAt.Format("2006-01-02 15:04:05"))
}

func printLeadListTable(leads []*model.Lead, p model.Pagination) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tSTATUS\tSOURCE\tSCORE\tVALUE")
	for _, l := range leads {
		name := l.Name()
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			l.ID,
			name,
			l.Company,
			ui.RenderStatus(l.Status),
			l.Source,
			l.Score,
			formatCurrency(l.LeadValue),
		)
	}
	w.Flush()
	fmt.Printf("\nPage %d of %d (%d leads total)\n", p.CurrentPage, p.TotalPages, p.TotalLeads)
}

func formatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// confirmPrompt asks a yes/no question on the terminal and returns the answer.
func confirmPrompt(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
