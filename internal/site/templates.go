package site

// pageTemplate is the HTML shell for the exported knowledge base.
const pageTemplate = `<!DOCTYPE html>
<html lang="nl">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<main>
{{.Content}}
</main>
<footer>
<p>Gegenereerd door dklbot.</p>
</footer>
</body>
</html>
`

// cssContent is the stylesheet written next to index.html.
const cssContent = `:root {
  --accent: #ff9328;
  --ink: #1f2937;
  --muted: #6b7280;
  --line: #e5e7eb;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
  color: var(--ink);
  line-height: 1.6;
  background: #fff;
}

main {
  max-width: 760px;
  margin: 0 auto;
  padding: 2rem 1.25rem 4rem;
}

h1 {
  border-bottom: 3px solid var(--accent);
  padding-bottom: 0.4rem;
}

h2 { margin-top: 2.5rem; }
h3 { color: var(--accent); margin-top: 2rem; }
h4 { margin-bottom: 0.3rem; }
h4 + p { margin-top: 0.3rem; }

table {
  width: 100%;
  border-collapse: collapse;
  margin: 1rem 0;
}

th, td {
  text-align: left;
  padding: 0.5rem 0.75rem;
  border-bottom: 1px solid var(--line);
}

th { background: #fff7ed; }

em { color: var(--muted); }

footer {
  text-align: center;
  color: var(--muted);
  font-size: 0.85rem;
  padding: 1rem 0 2rem;
}
`
