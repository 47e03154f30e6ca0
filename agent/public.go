package agent

import (
	"context"
	"fmt"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/date"
	"github.com/etnz/finbook/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Analyse sentiment of user request, he is here primarily to keep track of his money:
			where it goes, what is due soon, and how his savings are doing.
			If he is angry try to understand why, and seek for a clear user approval.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know about his accounts and recurring payments, check the book first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor is the expert grounded on Google Search for everything outside
// of the user's own book.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a financial advisor,
		Very well aware of financial products, banks, insurance and investment schemes,
		about rates, taxes and the latest financial news.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance, you can search and find about anything related to
			banks, insurance, loans, deposits, gold prices etc. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of the user's book. open is
// called on every tool call so the expert always reads fresh data.
func NewBookkeeper(open func() (*finbook.Book, error)) *Expert {

	lib := []Function{
		netWorthFunc(open),
		summaryFunc(open),
		transactionsFunc(open),
		scheduleFunc(open),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's book of accounts.
		He knows every transaction, account balance, upcoming payment, loan, insurance and investment.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's book of accounts.
				You know how to use the Tools to extract relevant information about the user's money.
				You are part of a team of experts, yours is everything recorded in the user's book. They might ask
				you questions about the user's finances, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's book
				  - net worth
				  - income and expense summaries over a period
				  - the transaction history
				  - the recurring payment schedule
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var markdownResponse = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown-formatted report.",
}

var rangeParameters = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"from": {
			Type:        genai.TypeString,
			Description: "Start of the period, inclusive, formatted YYYY-MM-DD. Defaults to the first day of the current month.",
		},
		"to": {
			Type:        genai.TypeString,
			Description: "End of the period, inclusive, formatted YYYY-MM-DD. Defaults to today.",
		},
	},
}

func netWorthFunc(open func() (*finbook.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "NetWorth",
			Description: `NetWorth computes the user's current net worth.

		It details account balances, bullion, fixed deposits, real estate and outstanding loans.
		`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response:   markdownResponse,
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := open()
			if err != nil {
				return errResponse(id, "NetWorth", err)
			}
			return okResponse(id, "NetWorth", renderer.NetWorth(b.NetWorth()))
		},
	}
}

func summaryFunc(open func() (*finbook.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary computes total income, total expense and the net over a period,
		with a per-category breakdown of the expenses.`,
			Parameters: rangeParameters,
			Response:   markdownResponse,
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			r, err := parseRange(args)
			if err != nil {
				return errResponse(id, "Summary", err)
			}
			b, err := open()
			if err != nil {
				return errResponse(id, "Summary", err)
			}
			return okResponse(id, "Summary", renderer.Summary(b.Summarize(r)))
		},
	}
}

func transactionsFunc(open func() (*finbook.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Transactions",
			Description: `Transactions lists the user's transactions over a period, most recent first.`,
			Parameters:  rangeParameters,
			Response:    markdownResponse,
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			r, err := parseRange(args)
			if err != nil {
				return errResponse(id, "Transactions", err)
			}
			b, err := open()
			if err != nil {
				return errResponse(id, "Transactions", err)
			}
			var txs []finbook.Transaction
			for _, tx := range b.Transactions() {
				if r.Contains(tx.Date) {
					txs = append(txs, tx)
				}
			}
			return okResponse(id, "Transactions", renderer.Transactions(txs))
		},
	}
}

func scheduleFunc(open func() (*finbook.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Schedule",
			Description: `Schedule lists the user's recurring payments with their next due date,
		flagging the ones that are overdue.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response:   markdownResponse,
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := open()
			if err != nil {
				return errResponse(id, "Schedule", err)
			}
			return okResponse(id, "Schedule", renderer.AutoCredits(b.AutoCredits(), date.Today()))
		},
	}
}

func parseRange(args map[string]any) (date.Range, error) {
	today := date.Today()
	r := date.Range{From: date.MonthOf(today).From, To: today}

	if v, ok := args["from"]; ok {
		s, ok := v.(string)
		if !ok {
			return r, fmt.Errorf("argument 'from' is not a string as expected but %T", v)
		}
		d, err := date.Parse(s)
		if err != nil {
			return r, fmt.Errorf("argument 'from' must be a YYYY-MM-DD date, got %q", s)
		}
		r.From = d
	}
	if v, ok := args["to"]; ok {
		s, ok := v.(string)
		if !ok {
			return r, fmt.Errorf("argument 'to' is not a string as expected but %T", v)
		}
		d, err := date.Parse(s)
		if err != nil {
			return r, fmt.Errorf("argument 'to' must be a YYYY-MM-DD date, got %q", s)
		}
		r.To = d
	}
	return r, nil
}
