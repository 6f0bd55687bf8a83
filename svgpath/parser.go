// Package svgpath parses the path mini-language used to author motion
// programs: the "d" attribute of an SVG path element. Curves are kept as
// control polygons until they are sampled.
package svgpath

// number of arguments taken by each command
var arity = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

type parser struct {
	toks []token
	i    int
	end  int

	segs []Segment

	cur      Point
	start    Point
	hasStart bool

	// The command being repeated, and the one before it. Zero means none.
	cmd  byte
	prev byte
	rel  bool
}

// Parse turns path text into segments. Any malformed input fails the whole
// path; there is no partial result.
func Parse(s string) ([]Segment, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks, end: len(s)}
	if err := p.run(); err != nil {
		return nil, err
	}

	return p.segs, nil
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func (p *parser) run() error {
	for p.i < len(p.toks) {
		t := p.toks[p.i]

		if t.isCommand() {
			upper := toUpper(t.cmd)
			if _, ok := arity[upper]; !ok {
				return &ParseError{Pos: t.pos, Token: t.raw, Err: ErrCommand}
			}

			p.prev = p.cmd
			p.cmd = upper
			p.rel = t.cmd != upper
			p.i++

		} else {
			if p.cmd == 0 {
				return &ParseError{Pos: t.pos, Token: t.raw, Err: ErrImplicit}
			}

			// Repeating a command makes it its own predecessor, which is what
			// lets a run of implicit S or T commands keep reflecting.
			p.prev = p.cmd
		}

		args, err := p.args(arity[p.cmd], t)
		if err != nil {
			return err
		}

		p.apply(args)
	}

	return nil
}

// args consumes the next n numbers.
func (p *parser) args(n int, at token) ([]float64, error) {
	args := make([]float64, n)

	for k := 0; k < n; k++ {
		if p.i >= len(p.toks) {
			return nil, &ParseError{Pos: p.end, Token: at.raw, Err: ErrArity}
		}

		t := p.toks[p.i]
		if t.isCommand() {
			return nil, &ParseError{Pos: t.pos, Token: t.raw, Err: ErrArity}
		}

		args[k] = t.num
		p.i++
	}

	return args, nil
}

// abs makes a point absolute if the current command is relative.
func (p *parser) abs(x, y float64) Point {
	if p.rel {
		return Point{p.cur.X + x, p.cur.Y + y}
	}
	return Point{x, y}
}

func (p *parser) emit(s Segment) {
	p.segs = append(p.segs, s)
	p.cur = s.End()
}

func (p *parser) apply(a []float64) {
	cur := p.cur

	switch p.cmd {
	case 'M':
		to := p.abs(a[0], a[1])
		p.emit(Segment{Kind: Move, Points: []Point{to}})
		p.start = to
		p.hasStart = true

		// Coordinates after a move are implicit lines, and keep the move's
		// relativeness.
		p.cmd = 'L'

	case 'L':
		p.emit(Segment{Kind: Line, Points: []Point{cur, p.abs(a[0], a[1])}})

	case 'H':
		x := a[0]
		if p.rel {
			x += cur.X
		}
		p.emit(Segment{Kind: Line, Points: []Point{cur, {x, cur.Y}}})

	case 'V':
		y := a[0]
		if p.rel {
			y += cur.Y
		}
		p.emit(Segment{Kind: Line, Points: []Point{cur, {cur.X, y}}})

	case 'Z':
		if p.hasStart {
			p.emit(Segment{Kind: Line, Points: []Point{cur, p.start}})
		}

		// Nothing may be implied after a close.
		p.hasStart = false
		p.cmd = 0

	case 'C':
		p.emit(Segment{Kind: Cubic, Points: []Point{cur, p.abs(a[0], a[1]), p.abs(a[2], a[3]), p.abs(a[4], a[5])}})

	case 'S':
		c1 := cur
		if p.prev == 'C' || p.prev == 'S' {
			c1 = cur.reflect(p.segs[len(p.segs)-1].Points[2])
		}
		p.emit(Segment{Kind: Cubic, Points: []Point{cur, c1, p.abs(a[0], a[1]), p.abs(a[2], a[3])}})

	case 'Q':
		p.emit(Segment{Kind: Quadratic, Points: []Point{cur, p.abs(a[0], a[1]), p.abs(a[2], a[3])}})

	case 'T':
		c := cur
		if p.prev == 'Q' || p.prev == 'T' {
			c = cur.reflect(p.segs[len(p.segs)-1].Points[1])
		}
		p.emit(Segment{Kind: Quadratic, Points: []Point{cur, c, p.abs(a[0], a[1])}})

	case 'A':
		p.emit(Segment{
			Kind:         Arc,
			Points:       []Point{cur, p.abs(a[5], a[6])},
			RX:           a[0],
			RY:           a[1],
			AxisRotation: a[2],
			LargeArc:     a[3] != 0,
			Sweep:        a[4] != 0,
		})
	}
}
