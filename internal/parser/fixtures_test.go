package parser

// Test fixtures follow real export shapes: the PokerStars hands mirror the
// 6-max cash format, the GGPoker hand the GMT/jackpot variant, and the
// tournament hand the "Tournament #" header with level blinds.

const pokerStarsCashHand = `PokerStars Hand #254446129399:  Hold'em No Limit ($0.02/$0.05 USD) - 2025/01/19 12:40:33 WET [2025/01/19 7:40:33 ET]
Table 'Wei III' 6-max Seat #1 is the button
Seat 1: maximoIV ($5.20 in chips)
Seat 2: dlourencobss ($4.94 in chips)
Seat 3: KavarzE ($5 in chips)
Seat 4: arsad725 ($5.49 in chips)
Seat 5: RE0309 ($4.63 in chips)
Seat 6: pernadao1599 ($3.43 in chips)
dlourencobss: posts small blind $0.02
KavarzE: posts big blind $0.05
*** HOLE CARDS ***
Dealt to KavarzE [Jc Tc]
arsad725: folds
RE0309: folds
pernadao1599: folds
maximoIV: raises $0.10 to $0.15
dlourencobss: folds
KavarzE: calls $0.10
*** FLOP *** [Js 5h Kh]
KavarzE: checks
maximoIV: bets $0.10
KavarzE: calls $0.10
*** TURN *** [Js 5h Kh] [9d]
KavarzE: checks
maximoIV: checks
*** RIVER *** [Js 5h Kh 9d] [2d]
KavarzE: bets $0.30
maximoIV: calls $0.30
*** SHOW DOWN ***
KavarzE: shows [Jc Tc] (a pair of Jacks)
maximoIV: mucks hand
KavarzE collected $1.07 from pot
*** SUMMARY ***
Total pot $1.12 | Rake $0.05
Board [Js 5h Kh 9d 2d]
Seat 1: maximoIV (button) mucked
Seat 2: dlourencobss (small blind) folded before Flop
Seat 3: KavarzE (big blind) showed [Jc Tc] and won ($1.07) with a pair of Jacks`

const pokerStarsPreflopFoldHand = `PokerStars Hand #254446129400:  Hold'em No Limit ($0.02/$0.05 USD) - 2025/01/19 12:41:05 WET [2025/01/19 7:41:05 ET]
Table 'Wei III' 6-max Seat #2 is the button
Seat 1: maximoIV ($5.20 in chips)
Seat 2: dlourencobss ($4.94 in chips)
Seat 3: KavarzE ($5 in chips)
Seat 4: arsad725 ($5.49 in chips)
Seat 5: RE0309 ($4.63 in chips)
Seat 6: pernadao1599 ($3.43 in chips)
KavarzE: posts small blind $0.02
arsad725: posts big blind $0.05
*** HOLE CARDS ***
Dealt to KavarzE [2s 7d]
RE0309: folds
pernadao1599: raises $0.10 to $0.15
maximoIV: folds
dlourencobss: folds
KavarzE: folds
arsad725: folds
Uncalled bet ($0.10) returned to pernadao1599
pernadao1599 collected $0.12 from pot
*** SUMMARY ***
Total pot $0.12 | Rake $0
Seat 2: dlourencobss (button) folded before Flop (didn't bet)
Seat 3: KavarzE (small blind) folded before Flop
Seat 4: arsad725 (big blind) folded before Flop
Seat 6: pernadao1599 collected ($0.12)`

const ggPokerJackpotHand = `GGPoker Hand #HD234567890: Hold'em No Limit ($0.25/$0.50 USD) - 2025/02/10 18:50:26 GMT
Table 'Rush001' 6-max Seat #5 is the button
Seat 1: Hero77 ($50 in chips)
Seat 3: villain1 ($62.10 in chips)
Seat 5: villain2 ($48.55 in chips)
Hero77: posts small blind $0.25
villain1: posts big blind $0.50
*** HOLE CARDS ***
Dealt to Hero77 [As Kd]
villain2: raises $1 to $1.50
Hero77: raises $3.50 to $5
villain1: folds
villain2: calls $3.50
*** FLOP *** [Ah 7c 2d]
Hero77: bets $11
villain2: calls $11
*** TURN *** [Ah 7c 2d] [Qs]
Hero77: bets $16
villain2: folds
Uncalled bet ($16) returned to Hero77
Hero77 collected $31.00 from pot
Jackpot contribution $0.50
*** SUMMARY ***
Total pot $32.50 | Rake $1.00 | Jackpot $0.50
Board [Ah 7c 2d Qs]
Seat 1: Hero77 (small blind) collected ($31.00)
Seat 3: villain1 (big blind) folded before Flop
Seat 5: villain2 (button) folded on the Turn`

const pokerStarsTournamentHand = `PokerStars Hand #254500000001: Tournament #987654321, $10+$1 USD Hold'em No Limit - Level V (30/60) - 2025/03/01 14:22:10 ET
Table '987654321 12' 9-max Seat #4 is the button
Seat 1: shortie (850 in chips)
Seat 2: bigstack (4200 in chips)
Seat 4: HeroTT (1500 in chips)
Seat 7: caller99 (2100 in chips)
caller99: posts small blind 30
shortie: posts big blind 60
*** HOLE CARDS ***
Dealt to HeroTT [Ad Ah]
bigstack: folds
HeroTT: raises 120 to 180
caller99: folds
shortie: calls 120
*** FLOP *** [2c 7h Jd]
shortie: checks
HeroTT: bets 200
shortie: folds
Uncalled bet (200) returned to HeroTT
HeroTT collected 390 from pot
*** SUMMARY ***
Total pot 390 | Rake 0
Board [2c 7h Jd]
Seat 1: shortie (big blind) folded on the Flop
Seat 4: HeroTT (button) collected (390)
HeroTT finished the tournament in 27th place
Total players: 180`

const pokerStarsAnteHand = `PokerStars Hand #254600000001: Tournament #555666777, $5+$0.50 USD Hold'em No Limit - Level X (100/200) - 2025/03/02 16:00:00 ET
Table '555666777 3' 9-max Seat #3 is the button
Seat 1: anteSB (5200 in chips)
Seat 2: anteBB (3900 in chips)
Seat 3: HeroAnte (4100 in chips)
anteSB: posts the ante 25
anteBB: posts the ante 25
HeroAnte: posts the ante 25
anteSB: posts small blind 100
anteBB: posts big blind 200
*** HOLE CARDS ***
Dealt to HeroAnte [Qs Qh]
HeroAnte: raises 400 to 600
anteSB: folds
anteBB: folds
Uncalled bet (400) returned to HeroAnte
HeroAnte collected 575 from pot
*** SUMMARY ***
Total pot 575 | Rake 0
Seat 1: anteSB (small blind) folded before Flop
Seat 2: anteBB (big blind) folded before Flop
Seat 3: HeroAnte (button) collected (575)`

const potInconsistentHand = `PokerStars Hand #254446129555:  Hold'em No Limit ($0.50/$1.00 USD) - 2025/01/20 09:10:00 WET [2025/01/20 4:10:00 ET]
Table 'Mira' 6-max Seat #1 is the button
Seat 1: villainA ($100 in chips)
Seat 2: HeroPC ($100 in chips)
Seat 3: villainB ($100 in chips)
HeroPC: posts small blind $0.50
villainB: posts big blind $1
*** HOLE CARDS ***
Dealt to HeroPC [Qs Qd]
villainA: folds
HeroPC: folds
villainB collected $500.00 from pot
*** SUMMARY ***
Total pot $1.00 | Rake $0
Seat 3: villainB (big blind) collected ($500.00)`

const malformedCardsHand = `PokerStars Hand #254446129666:  Hold'em No Limit ($0.02/$0.05 USD) - 2025/01/20 09:12:00 WET [2025/01/20 4:12:00 ET]
Table 'Mira' 6-max Seat #1 is the button
Seat 1: villainA ($5 in chips)
Seat 2: HeroPC ($5 in chips)
HeroPC: posts small blind $0.02
villainA: posts big blind $0.05
*** HOLE CARDS ***
Dealt to HeroPC [Xs 5d]
HeroPC: folds
*** SUMMARY ***
Total pot $0.07 | Rake $0`

const missingSummaryHand = `PokerStars Hand #254446129777:  Hold'em No Limit ($0.02/$0.05 USD) - 2025/01/20 09:14:00 WET [2025/01/20 4:14:00 ET]
Table 'Mira' 6-max Seat #1 is the button
Seat 1: villainA ($5 in chips)
Seat 2: HeroPC ($5 in chips)
HeroPC: posts small blind $0.02
villainA: posts big blind $0.05
*** HOLE CARDS ***
Dealt to HeroPC [As 5d]
HeroPC: folds`
