package pipeline

import (
	"time"

	"obdash/dash/anim"
	"obdash/dash/config"
	"obdash/dash/framebuf"
	"obdash/dash/input"
	"obdash/dash/logbuf"
	"obdash/dash/pages"
	"obdash/dash/profile"
	"obdash/dash/render"
	"obdash/dash/sensor"
	"obdash/dash/widgets"
)

// stepFrame runs one full renderer iteration: sample intake, input, state
// updates, page rendering and the buffer handoff.
func (p *Pipeline) stepFrame(now time.Time) {
	if p.haveT {
		p.frameD = now.Sub(p.last)
		p.fps.Tick(p.frameD)
	}
	p.last, p.haveT = now, true

	s := p.opt.Samples.Load()

	if p.resetRequested {
		p.cells.reseed(s)
		p.opt.Logs.Push(logbuf.Info, "MIN/AVG/MAX Reset", p.nowMS())
		p.resetRequested = false
	}
	p.peakEvents += uint32(p.cells.observe(s, now, p.frame))
	p.animateCells(s)

	p.handleButtons(now)

	// The warning overlay rides the popup slot but follows the condition,
	// not the TTL: it is raised while EGT threatens the manifold and no
	// user popup is showing, and drops the moment the condition clears.
	p.dangerActive = s.EGTC >= config.EGTDangerManifold
	popup, active := p.popups.Active(now)
	if p.dangerActive && !active {
		p.popups.Trigger(render.PopupWarning, now)
		popup, active = p.popups.Active(now)
	}
	if !p.dangerActive && active && popup.Kind == render.PopupWarning {
		p.popups.Dismiss()
		active = false
	}
	p.rstate.BeginFrame(active)

	renderStart := p.opt.Cycles.Read()
	p.renderPage(s, popup, active)
	p.renderCycles = profile.Elapsed(renderStart, p.opt.Cycles.Read())

	p.heartbeat()
	p.frame++
	p.submit()
}

func (p *Pipeline) handleButtons(now time.Time) {
	ev := p.buttons.Poll(p.opt.Buttons(), now)
	act := input.Map(ev, p.page.Current() == pages.Dashboard)

	if act.CycleFPSMode {
		p.fpsMode = p.fpsMode.Next()
		p.popups.Trigger(render.PopupFPS, now)
	}
	if act.ToggleBoostUnit {
		p.unitPSI = !p.unitPSI
		p.popups.Trigger(render.PopupBoostUnit, now)
	}
	if act.ResetStats {
		p.resetRequested = true
		p.popups.Trigger(render.PopupReset, now)
	}
	if act.CyclePage {
		page := p.page.Advance()
		p.rstate.Rearm()
		p.fps.Reset()
		p.popups.Dismiss()
		p.opt.Logs.Push(logbuf.Debug, "page: "+page.Title(), p.nowMS())
	}
}

func (p *Pipeline) heartbeat() {
	if p.opt.LED == nil {
		return
	}
	p.ledOn = !p.ledOn
	if p.ledOn {
		p.opt.LED.High()
	} else {
		p.opt.LED.Low()
	}
}

// animateCells retargets every cell background from the current sample and
// advances the transitions. It runs every frame regardless of the visible
// page so colors never snap when the dashboard comes back.
func (p *Pipeline) animateCells(s sensor.Samples) {
	p.cells.colors.SetTarget(cellBoost, framebuf.To565(widgets.Black))
	p.cells.colors.SetTarget(cellAFR, framebuf.To565(widgets.AFRColor(s.AFR)))
	p.cells.colors.SetTarget(cellBatt, framebuf.To565(widgets.BatteryColor(s.BatteryV)))
	p.cells.colors.SetTarget(cellCoolant, framebuf.To565(widgets.CoolantColor(s.CoolantC)))
	p.cells.colors.SetTarget(cellOil, framebuf.To565(widgets.OilDSGColor(s.OilC)))
	p.cells.colors.SetTarget(cellDSG, framebuf.To565(widgets.OilDSGColor(s.DSGC)))
	p.cells.colors.SetTarget(cellIAT, framebuf.To565(widgets.IATColor(s.IATC)))
	p.cells.colors.SetTarget(cellEGT, framebuf.To565(widgets.EGTColor(s.EGTC)))
	p.changedMask = p.cells.colors.Step()
}

func (p *Pipeline) renderPage(s sensor.Samples, popup render.Popup, popupActive bool) {
	if p.splashRemaining > 0 {
		p.splashRemaining--
		if p.splashRemaining == 0 {
			// Both buffers still hold splash pixels; clear them before the
			// first page draws, or the cell gutters keep stale text.
			p.rstate.RequestClear()
		}
		p.tgt.Clear(widgets.Black)
		widgets.DrawSplash(p.tgt, p.opt.Version)
		return
	}
	if p.rstate.TakeClear() {
		p.tgt.Clear(widgets.Black)
	}
	switch p.page.Current() {
	case pages.Dashboard:
		p.renderDashboard(s, popup, popupActive)
	case pages.Debug:
		p.renderDebug()
	case pages.Logs:
		p.renderLogs()
	}
}

func (p *Pipeline) renderDashboard(s sensor.Samples, popup render.Popup, popupActive bool) {
	buf := p.db.RenderIndex()

	fpsStr := p.fpsMode.Format(p.fps.RoundedInstant(), p.fps.RoundedAverage())
	if p.rstate.HeaderNeedsRedraw(buf, p.fpsMode, fpsStr) {
		widgets.DrawHeader(p.tgt, pages.Dashboard.Title(), fpsStr)
		p.rstate.MarkHeaderDrawn(buf, p.fpsMode, fpsStr)
	}
	if p.rstate.DividersNeedRedraw(buf) {
		widgets.DrawDividers(p.tgt)
		p.rstate.MarkDividersDrawn(buf)
	}

	common := func(cell int, critical bool) widgets.CellCommon {
		tr := &p.cells.tracks[cell]
		return widgets.CellCommon{
			Bg:       framebuf.From565(p.cells.colors.Current(cell)),
			Critical: critical,
			Frame:    p.frame,
			Trend:    tr.state.Trend(),
			Peak:     tr.state.IsPeak(p.last),
			State:    &tr.state,
		}
	}

	const rowTop = config.HeaderHeight
	const rowBottom = config.HeaderHeight + config.RowHeight

	widgets.DrawBoostCell(p.tgt, 0, rowTop, widgets.BoostCellData{
		CellCommon: common(cellBoost, false),
		Bar:        s.BoostBar,
		MaxBar:     p.cells.tracks[cellBoost].max,
		UnitPSI:    p.unitPSI,
	})
	widgets.DrawAFRCell(p.tgt, config.ColWidth, rowTop, widgets.AFRCellData{
		CellCommon: common(cellAFR, widgets.IsCriticalAFR(s.AFR)),
		AFR:        s.AFR,
		Avg:        p.cells.tracks[cellAFR].state.Average(),
	})
	widgets.DrawBatteryCell(p.tgt, 2*config.ColWidth, rowTop, widgets.BatteryCellData{
		CellCommon: common(cellBatt, config.IsCriticalBattery(s.BatteryV)),
		Volts:      s.BatteryV,
		Min:        p.cells.tracks[cellBatt].min,
	})
	widgets.DrawTempCell(p.tgt, 3*config.ColWidth, rowTop, "COOL", widgets.TempCellData{
		CellCommon: common(cellCoolant, widgets.IsCriticalCoolant(s.CoolantC)),
		Value:      s.CoolantC,
		Min:        p.cells.tracks[cellCoolant].min,
		Max:        p.cells.tracks[cellCoolant].max,
		Avg:        p.cells.tracks[cellCoolant].state.Average(),
	})

	widgets.DrawTempCell(p.tgt, 0, rowBottom, "OIL", widgets.TempCellData{
		CellCommon: common(cellOil, widgets.IsCriticalOilDSG(s.OilC)),
		Value:      s.OilC,
		Min:        p.cells.tracks[cellOil].min,
		Max:        p.cells.tracks[cellOil].max,
		Avg:        p.cells.tracks[cellOil].state.Average(),
		LowBadge:   widgets.IsLowOil(s.OilC),
	})
	widgets.DrawTempCell(p.tgt, config.ColWidth, rowBottom, "DSG", widgets.TempCellData{
		CellCommon: common(cellDSG, widgets.IsCriticalOilDSG(s.DSGC)),
		Value:      s.DSGC,
		Min:        p.cells.tracks[cellDSG].min,
		Max:        p.cells.tracks[cellDSG].max,
		Avg:        p.cells.tracks[cellDSG].state.Average(),
	})
	widgets.DrawTempCell(p.tgt, 2*config.ColWidth, rowBottom, "IAT", widgets.TempCellData{
		CellCommon: common(cellIAT, widgets.IsCriticalIAT(s.IATC)),
		Value:      s.IATC,
		Min:        p.cells.tracks[cellIAT].min,
		Max:        p.cells.tracks[cellIAT].max,
		Avg:        p.cells.tracks[cellIAT].state.Average(),
	})
	widgets.DrawTempCell(p.tgt, 3*config.ColWidth, rowBottom, "EGT", widgets.TempCellData{
		CellCommon: common(cellEGT, widgets.IsCriticalEGT(s.EGTC)),
		Value:      s.EGTC,
		Min:        p.cells.tracks[cellEGT].min,
		Max:        p.cells.tracks[cellEGT].max,
		Avg:        p.cells.tracks[cellEGT].state.Average(),
	})

	if popupActive {
		switch popup.Kind {
		case render.PopupReset:
			widgets.DrawResetPopup(p.tgt)
		case render.PopupFPS:
			widgets.DrawFPSPopup(p.tgt, p.fpsMode.Label())
		case render.PopupBoostUnit:
			widgets.DrawBoostUnitPopup(p.tgt, p.unitPSI)
		case render.PopupWarning:
			widgets.DrawWarningPopup(p.tgt, anim.BlinkOn(p.frame))
		}
	}
}

func (p *Pipeline) renderDebug() {
	p.tgt.Clear(widgets.Black)
	widgets.DrawHeader(p.tgt, pages.Debug.Title(), "")
	widgets.DrawDebugPage(p.tgt, p.debugStats())
}

func (p *Pipeline) debugStats() widgets.DebugStats {
	return widgets.DebugStats{
		FPS:            p.fps.RoundedInstant(),
		AvgFPS:         p.fps.RoundedAverage(),
		PeakFPS:        int(p.fps.Peak() + 0.5),
		FrameUS:        uint32(p.frameD / time.Microsecond),
		RenderUS:       profile.CyclesToMicros(p.renderCycles, p.freqHz),
		FlushUS:        profile.CyclesToMicros(p.lastFlush.cycles, p.freqHz),
		Swaps:          p.swaps,
		Waits:          p.waits,
		RenderBuf:      p.db.RenderIndex(),
		FlushBuf:       p.lastFlush.idx,
		UtilPct:        profile.Utilization(p.renderCycles, p.freqHz, uint32(p.frameD/time.Microsecond)),
		CyclesPerFrame: p.renderCycles,
		CPUMHz:         p.freqHz / 1_000_000,
		AnimMask:       p.changedMask,
		PeakEvents:     p.peakEvents,
		Mem:            profile.ReadMem(),
	}
}

func (p *Pipeline) renderLogs() {
	p.tgt.Clear(widgets.Black)
	widgets.DrawHeader(p.tgt, pages.Logs.Title(), "")
	var scratch [config.LogCap]logbuf.Entry
	widgets.DrawLogsPage(p.tgt, p.opt.Logs.Snapshot(scratch[:]))
}
