package sitegen

import "strings"

// fill substitutes {{NAME}} placeholders in tmpl with their replacement
// text. Replacements are literal; no placeholder may expand to another
// placeholder.
func fill(tmpl string, repl map[string]string) string {
	for name, text := range repl {
		tmpl = strings.ReplaceAll(tmpl, "{{"+name+"}}", text)
	}
	return tmpl
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Patrick Zulian | Portfolio</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap" rel="stylesheet">
  <link rel="stylesheet" href="assets/css/style.css">
</head>
<body>
  <header class="hero hero--compact" id="top">
    <nav class="nav">
      <a class="nav__brand" href="index.html#top">Patrick Zulian</a>
      <div class="nav__links">
        <a href="index.html#about">About</a>
        <a href="index.html#research">Research</a>
        <a href="index.html#experience">Experience</a>
        <a href="index.html#projects">Projects</a>
        <a href="index.html#service">Service</a>
        <a href="portfolio.html" aria-current="page">Portfolio</a>
      </div>
    </nav>
    <div class="hero__content">
      <p class="hero__eyebrow">Scientific work</p>
      <p class="hero__lede">
        Projects, articles, and open-source software.
      </p>
    </div>
  </header>

  <main>
    <section class="section" id="portfolio">
      <div class="section__inner">
        <div class="portfolio-grid">
{{CARDS}}
        </div>
      </div>
    </section>
  </main>

  <footer class="footer">
    <p>© <span id="year"></span> Patrick Zulian</p>
  </footer>

  <a href="#top" class="back-to-top" aria-label="Back to top">↑</a>

  <script>
    document.getElementById('year').textContent = new Date().getFullYear();
  </script>
</body>
</html>
`

const cardTemplate = `          <article class="portfolio-card">
            <h3>{{TITLE}}</h3>
{{GALLERY}}
{{DESCRIPTION}}
{{LINKS}}
          </article>`

const galleryTemplate = `            <div class="portfolio-card__gallery">
{{FIGURES}}
            </div>`

const figureTemplate = `              <figure class="portfolio-card__figure">
                <img src="{{SRC}}" alt="{{ALT}}">
{{CAPTION}}
              </figure>`

const figureCaptionTemplate = `                <figcaption>{{TEXT}}</figcaption>`

const descriptionTemplate = `            <details class="portfolio-card__details">
              <summary class="portfolio-card__summary">Project overview</summary>
              <div class="portfolio-card__description">
{{CONTENT}}
              </div>
            </details>`

const linksTemplate = `            <div class="portfolio-card__links">
{{ITEMS}}
            </div>`

const paperButtonTemplate = `<a class="button button--doc" href="{{URL}}" target="_blank" rel="noopener">
                  <span class="button__icon" aria-hidden="true">
                    <svg viewBox="0 0 32 32" role="img" focusable="false">
                      <path d="M9 3h11l7 7v15a4 4 0 0 1-4 4H9a4 4 0 0 1-4-4V7a4 4 0 0 1 4-4z" fill="none" stroke="currentColor" stroke-width="2" stroke-linejoin="round"/>
                      <path d="M20 3v8h7" fill="none" stroke="currentColor" stroke-width="2" stroke-linejoin="round"/>
                      <rect x="9" y="19" width="14" height="8" rx="1.6" fill="currentColor"/>
                      <text x="16" y="25" text-anchor="middle" font-family="Inter, 'Segoe UI', sans-serif" font-size="7" font-weight="700" fill="#ffffff">PDF</text>
                    </svg>
                  </span>
                  <span class="button__label">Read Paper</span>
                </a>`

const videoButtonTemplate = `<a class="button button--video" href="{{URL}}" target="_blank" rel="noopener">
                  <span class="button__label">Watch Video</span>
                </a>`

const statusBadgeTemplate = `<span class="badge badge--status">{{STATUS}}</span>`
