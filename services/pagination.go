package services

// ListPage carries skip/limit pagination for list queries. Out-of-range
// values normalize to the first page of ten rows. No upper bound is enforced
// at this layer; the transport decides its own limits.
type ListPage struct {
	Page     int
	PageSize int
}

func (p ListPage) normalized() ListPage {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	return p
}

func (p ListPage) Offset() int {
	n := p.normalized()
	return (n.Page - 1) * n.PageSize
}

func (p ListPage) Limit() int {
	return p.normalized().PageSize
}
