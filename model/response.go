package model

// Response is the decision tree returned by a PDP for an Authorize call
// (spec §3). Request is the echoed original request, present only when
// the PDP includes it; Results preserves the PDP's ordering. No minimum
// count is enforced: an empty Results list is accepted.
type Response struct {
	Request *Request
	Results []*Result
}

// NewResponse creates an empty Response.
func NewResponse() *Response {
	return &Response{Results: []*Result{}}
}

// SetRequest sets or clears the optional echoed request.
func (r *Response) SetRequest(request *Request) {
	r.Request = request
}

// AddResult appends result to the ordered result list.
func (r *Response) AddResult(result *Result) {
	r.Results = append(r.Results, result)
}

// Clone returns a deep copy of r.
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}

	clone := &Response{Request: r.Request.Clone()}
	if r.Results != nil {
		clone.Results = make([]*Result, len(r.Results))
		for i, res := range r.Results {
			clone.Results[i] = res.Clone()
		}
	}

	return clone
}
