package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// noValue is a label sentinel no score or level can equal, so the first frame always draws
const noValue = math.MinInt

// Renderer issues draw calls against a framebuffer-less display.
// Entities are redrawn every frame by clear-then-draw; only the text labels are diffed.
type Renderer struct {
	display core.Display
	printer *message.Printer

	prevScore  int
	prevLevel  int
	timerShown bool
}

// NewRenderer creates a renderer whose labels are formatted for tag
func NewRenderer(display core.Display, tag language.Tag) *Renderer {
	return &Renderer{
		display:   display,
		printer:   message.NewPrinter(tag),
		prevScore: noValue,
		prevLevel: noValue,
	}
}

// invalidate forgets the drawn labels after a full clear
func (r *Renderer) invalidate() {
	r.prevScore = noValue
	r.prevLevel = noValue
	r.timerShown = false
}

func (r *Renderer) text(x, y, size int, s string) {
	r.display.SetCursor(x, y)
	r.display.SetTextColor(RgbText)
	r.display.SetTextSize(size)
	r.display.Print(s)
}

func (r *Renderer) fillCell(c core.Cell, color core.RGB) {
	r.display.FillRect(c.X, c.Y, constants.CellSize, constants.CellSize, color)
}

// DrawStartScreen clears the panel and prints the empty labels and the start prompt
func (r *Renderer) DrawStartScreen() {
	r.display.FillRect(0, 0, r.display.Width(), r.display.Height(), RgbBackground)
	r.invalidate()

	r.text(constants.ScoreLabelX, constants.ScoreLabelY, constants.LabelTextSize, r.printer.Sprintf("Score: "))
	r.text(constants.StartLevelLabelX, constants.ScoreLabelY, constants.LabelTextSize, r.printer.Sprintf("Level: "))
	r.text(constants.TimerLabelX, constants.TimerLabelY, constants.LabelTextSize, r.printer.Sprintf("Timer: "))
	r.text(constants.StartPromptX, constants.StartPromptY, constants.LabelTextSize, r.printer.Sprintf("Press button to start"))
	r.display.Show()
}

// ClearStartPrompt blanks the prompt once the game starts
func (r *Renderer) ClearStartPrompt() {
	r.display.FillRect(constants.StartPromptClearX, constants.StartPromptClearY,
		constants.StartPromptClearW, constants.StartPromptClearH, RgbBackground)
}

// EraseSnake fills every live segment with the background; called before motion
func (r *Renderer) EraseSnake(s *engine.Snake) {
	for _, c := range s.Segments() {
		r.fillCell(c, RgbBackground)
	}
}

// EraseCell blanks one cell, used for expired food
func (r *Renderer) EraseCell(c core.Cell) {
	r.fillCell(c, RgbBackground)
}

// DrawFrame draws entities, then the labels whose values changed
func (r *Renderer) DrawFrame(gs *engine.GameState) {
	// Body first so the head wins when a wrap momentarily overlaps
	segments := gs.Snake.Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		color := RgbSnakeBody
		if i == 0 {
			color = RgbSnakeHead
		}
		r.fillCell(segments[i], color)
	}

	if gs.Food.Active {
		r.fillCell(gs.Food.Pos, RgbFood)
	}
	for i := 0; i < gs.HazardTarget; i++ {
		if gs.Hazards[i].Active {
			r.fillCell(gs.Hazards[i].Pos, RgbHazard)
		}
	}

	if gs.Level >= constants.BarrierLevel && gs.Barrier.Active {
		zone := gs.Barrier.KillZone(gs.Grid.CellSize)
		r.display.FillRect(zone.X, zone.Y, zone.Width, zone.Height, RgbBarrierZone)
		r.display.SetCursor(zone.X, zone.Y)
		r.display.SetTextColor(RgbBarrier)
		r.display.SetTextSize(constants.BarrierTextSize)
		r.display.Print(constants.BarrierGlyph)
	}

	r.drawLabels(gs)
}

func (r *Renderer) drawLabels(gs *engine.GameState) {
	if gs.Score != r.prevScore {
		r.display.FillRect(constants.ScoreLabelX, constants.ScoreLabelY,
			constants.LabelClearWidth, constants.LabelClearHeight, RgbBackground)
		r.text(constants.ScoreLabelX, constants.ScoreLabelY, constants.LabelTextSize,
			r.printer.Sprintf("Score: %d", gs.Score))
		r.prevScore = gs.Score
	}

	if gs.Level != r.prevLevel {
		r.display.FillRect(constants.LevelLabelX, constants.LevelLabelY,
			constants.LabelClearWidth, constants.LabelClearHeight, RgbBackground)
		r.text(constants.LevelLabelX, constants.LevelLabelY, constants.LabelTextSize,
			r.printer.Sprintf("Level: %d", gs.Level))
		r.prevLevel = gs.Level
	}

	// Countdown changes on wall-clock seconds, so it is redrawn every frame
	if gs.Level >= constants.TimedFoodLevel && gs.Food.Active {
		r.display.FillRect(constants.TimerLabelX, constants.TimerLabelY,
			constants.TimerClearWidth, constants.LabelClearHeight, RgbBackground)
		r.text(constants.TimerLabelX, constants.TimerLabelY, constants.LabelTextSize,
			r.printer.Sprintf("Timer: %d", gs.Countdown))
		r.timerShown = true
	} else if r.timerShown {
		r.display.FillRect(constants.TimerLabelX, constants.TimerLabelY,
			constants.TimerClearWidth, constants.LabelClearHeight, RgbBackground)
		r.timerShown = false
	}
}

// DrawGameOver clears the panel and prints the final score
func (r *Renderer) DrawGameOver(score int) {
	r.display.FillRect(0, 0, r.display.Width(), r.display.Height(), RgbBackground)
	r.invalidate()
	r.text(constants.GameOverX, constants.GameOverY, constants.GameOverTextSize, r.printer.Sprintf("Game Over"))
	r.text(constants.FinalScoreX, constants.FinalScoreY, constants.GameOverTextSize,
		r.printer.Sprintf("Final Score: %d", score))
}
