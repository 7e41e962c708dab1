package latex

// Commands is the fixed command list offered by editor autocompletion.
// Ordered roughly by how often they appear in student submissions.
var Commands = []string{
	"frac", "sqrt", "cdot", "times", "div", "pm",
	"le", "leq", "ge", "geq", "ne", "neq", "approx", "equiv",
	"alpha", "beta", "gamma", "delta", "epsilon", "theta", "lambda",
	"mu", "pi", "sigma", "phi", "omega",
	"Delta", "Sigma", "Pi", "Omega",
	"sum", "prod", "int", "lim", "infty", "partial",
	"sin", "cos", "tan", "log", "ln", "exp",
	"left", "right", "text", "mathrm",
	"begin", "end", "item", "label",
	"in", "subset", "cup", "cap", "forall", "exists",
	"to", "rightarrow", "Rightarrow", "implies",
	"therefore", "because", "angle", "circ", "degree",
	"ldots", "cdots", "quad", "qquad",
	"overline", "underline", "vec", "hat", "bar",
	"binom", "pmatrix", "cases", "align",
}

// Snippet is one entry of the symbol palette: a label shown in the UI
// and the source inserted at the caret.
type Snippet struct {
	Label  string
	Insert string
}

// Snippets is the symbol palette content.
var Snippets = []Snippet{
	{"fraction", `\frac{}{}`},
	{"square root", `\sqrt{}`},
	{"nth root", `\sqrt[]{}`},
	{"exponent", `^{}`},
	{"subscript", `_{}`},
	{"multiply", `\cdot `},
	{"plus-minus", `\pm `},
	{"less-equal", `\le `},
	{"greater-equal", `\ge `},
	{"not-equal", `\ne `},
	{"pi", `\pi `},
	{"theta", `\theta `},
	{"infinity", `\infty `},
	{"sum", `\sum_{}^{}`},
	{"integral", `\int_{}^{}`},
	{"limit", `\lim_{x \to }`},
	{"binomial", `\binom{}{}`},
	{"display math", `$$  $$`},
	{"inline math", `$  $`},
	{"aligned steps", "\\begin{align}\n\n\\end{align}"},
}
