package gen

// CompanyPlan decides how many records a run has and which company owns each.
type CompanyPlan interface {
	Total() int
	Company(src *Source, seq int) string
	// Scale returns an equivalent plan sized to total records.
	Scale(total int) CompanyPlan
}

type Quota struct {
	Company string
	Count   int
}

// Quotas hands out contiguous runs of records per company, in order.
type Quotas []Quota

func (q Quotas) Total() int {
	n := 0
	for _, c := range q {
		n += c.Count
	}
	return n
}

func (q Quotas) Company(_ *Source, seq int) string {
	for _, c := range q {
		if seq < c.Count {
			return c.Company
		}
		seq -= c.Count
	}
	return q[len(q)-1].Company
}

// Scale keeps the company proportions. Rounding drift goes to the last company.
func (q Quotas) Scale(total int) CompanyPlan {
	current := q.Total()
	out := make(Quotas, len(q))
	assigned := 0
	for i, c := range q {
		n := c.Count * total / current
		if i == len(q)-1 {
			n = total - assigned
		}
		out[i] = Quota{Company: c.Company, Count: n}
		assigned += n
	}
	return out
}

// Uniform picks a company at random for every record.
type Uniform struct {
	Companies []string
	Count     int
}

func (u Uniform) Total() int { return u.Count }

func (u Uniform) Company(src *Source, _ int) string { return Pick(src, u.Companies) }

func (u Uniform) Scale(total int) CompanyPlan {
	return Uniform{Companies: u.Companies, Count: total}
}
