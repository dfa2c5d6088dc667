package web

import (
	"bytes"
	"html/template"

	"github.com/jaminalder/tictactoe-time-travel/internal/domain"
	"github.com/jaminalder/tictactoe-time-travel/internal/view"
)

type templates struct {
	game  *template.Template
	frag  *template.Template
	index *template.Template
}

// gameData is what the game fragment renders from.
type gameData struct {
	ID     string
	Status string
	Rows   [][]view.Cell
	Moves  []view.Move
	Order  string
}

func newGameData(s domain.Session) gameData {
	b := view.ForGame(&s.Game)
	return gameData{
		ID:     s.ID,
		Status: b.Status(),
		Rows:   b.Rows(),
		Moves:  view.Moves(&s.Game),
		Order:  view.OrderLabel(s.Game.Descending),
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Parse(baseTemplate))
	// Define the fragment within the same set so the game page can include it
	template.Must(base.New("game").Parse(gameTemplate))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Tic-Tac-Toe</h1>
<form action="/game" method="post"><button>New game</button></form>`))
	game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" sse-connect="/game/{{.ID}}/events">
  <div id="game-container" sse-swap="game">{{template "game" .}}</div>
</div>`))
	// Standalone fragment used for htmx swaps and SSE payloads
	frag := template.Must(template.New("game_only").Parse(gameTemplate))
	return &templates{game: game, frag: frag, index: index}
}

// renderTemplate executes t, or the template called name in t's set when
// name is not empty.
func renderTemplate(t *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if name == "" {
		err = t.Execute(&buf, data)
	} else {
		err = t.ExecuteTemplate(&buf, name, data)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const baseTemplate = `<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/sse.js"></script>
<style>
.game { display: flex; flex-direction: row; }
.game-info { margin-left: 20px; }
.board-row { display: flex; }
.board-row form { margin: 0; }
.square { width: 34px; height: 34px; margin: -1px -1px 0 0; padding: 0; font-size: 24px; font-weight: bold; line-height: 34px; text-align: center; background: #fff; border: 1px solid #999; }
.square.highlight { background: #ffe066; }
</style>
</head><body>{{template "content" .}}</body></html>`

const gameTemplate = `<div id="game" class="game">
  <div class="game-board">
    <div class="status" style="font-weight: bold">{{.Status}}</div>
    {{range .Rows}}
    <div class="board-row">
      {{range .}}
      <form action="/game/{{$.ID}}/play" method="post" hx-post="/game/{{$.ID}}/play" hx-target="#game" hx-swap="outerHTML">
        <input type="hidden" name="cell" value="{{.Index}}">
        <button type="submit" class="square{{if .Highlight}} highlight{{end}}">{{.Value}}</button>
      </form>
      {{end}}
    </div>
    {{end}}
  </div>
  <div class="game-info">
    <form action="/game/{{.ID}}/order" method="post" hx-post="/game/{{.ID}}/order" hx-target="#game" hx-swap="outerHTML">
      <button type="submit" class="order">{{.Order}}</button>
    </form>
    <ol>
      {{range .Moves}}
      {{if .Current}}
      <li><strong>{{.Label}}</strong></li>
      {{else}}
      <li>
        <form action="/game/{{$.ID}}/jump" method="post" hx-post="/game/{{$.ID}}/jump" hx-target="#game" hx-swap="outerHTML">
          <input type="hidden" name="move" value="{{.Move}}">
          <button type="submit">{{.Label}}</button>
        </form>
      </li>
      {{end}}
      {{end}}
    </ol>
  </div>
</div>
`
