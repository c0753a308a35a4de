package heuristics

// Static detection tables. Built once at process start and never
// mutated; safe for concurrent readers.

// shortlinkDomains are known URL-shortening services. Matching is by
// substring containment over the lowercased hostname.
var shortlinkDomains = []string{
	"bit.ly", "tinyurl.com", "goo.gl", "ow.ly", "t.co",
	"buff.ly", "is.gd", "cli.gs", "pic.gd", "dwarfurl.com",
	"yfrog.com", "migre.me", "ff.im", "tiny.cc", "url4.eu",
	"tr.im", "twit.ac", "su.pr", "twurl.nl", "snipurl.com",
	"short.to", "budurl.com", "ping.fm", "post.ly", "just.as",
	"bkite.com", "snipr.com", "fic.kr", "loopt.us", "doiop.com",
	"twitthis.com", "htxt.it", "alturl.com", "redirx.com", "digbig.com",
	"short.ie", "u.mavrev.com", "kl.am", "wp.me", "rubyurl.com",
	"om.ly", "to.ly", "bit.do", "lnkd.in", "db.tt",
	"qr.ae", "adf.ly", "bitly.com", "cur.lv", "ity.im",
	"q.gs", "po.st", "bc.vc", "u.to",
	"j.mp", "buzurl.com", "cutt.us", "u.bb", "yourls.org",
	"x.co", "prettylinkpro.com", "scrnch.me", "filoops.info", "vzturl.com",
	"qr.net", "1url.com", "tweez.me", "v.gd",
	"link.zip", "cutt.ly", "rb.gy", "short.link",
}

// riskyTLDs are top-level domains statistically associated with
// free/no-verification registration and abuse. Matched as hostname
// suffixes.
var riskyTLDs = []string{
	".tk", ".ml", ".ga", ".cf", ".gq", // free registrars
	".top", ".xyz", ".club", ".work", ".click",
	".link", ".download", ".stream", ".loan", ".win",
	".bid", ".racing", ".party", ".review", ".trade",
	".date", ".faith", ".science", ".cricket", ".accountant",
	".men", ".webcam", ".pw", ".cc", ".ws",
}

// legitimateBankDomains are real Gulf/Egyptian bank domains, kept for
// impersonation checks against look-alike hosts.
var legitimateBankDomains = []string{
	"alrajhibank.com.sa", "sabb.com", "riyadbank.com",
	"alinma.com", "bsf.com.sa", "bankalbilad.com",
	"alawwalbank.com", "samba.com", "banksaudifranci.com",
	"saib.com.sa", "arabianbank.com", "gulf-bank.com",
	"nbk.com", "cib.com.eg", "nbe.com.eg",
	"banquemisr.com", "alexbank.com", "qnb.com",
	"dohabank.com", "cbq.qa", "ahlibank.com.qa",
}

// arabicUrgencyPhrases trigger the arabic_urgency flag.
var arabicUrgencyPhrases = []string{
	"عاجل", "فوري", "سريع", "الآن", "حالا",
	"خلال ساعة", "قبل منتصف الليل", "آخر فرصة", "ينتهي اليوم",
	"محدود", "لفترة محدودة", "العرض ينتهي", "اسرع",
	"لا تفوت", "فرصة العمر", "عرض حصري",
}

// arabicPenaltyPhrases trigger the arabic_penalty flag.
var arabicPenaltyPhrases = []string{
	"سيتم إيقاف", "سيتم تعليق", "سيتم إغلاق", "سيتم حظر",
	"غرامة", "عقوبة", "إجراء قانوني", "مخالفة",
	"تحذير نهائي", "آخر تنبيه", "إنذار", "مطلوب منك",
	"يجب عليك", "ملزم", "قانونيا", "محكمة",
}

// arabicOTPPhrases trigger the arabic_otp flag.
var arabicOTPPhrases = []string{
	"رمز التحقق", "كود التفعيل", "الرمز السري", "رمز الأمان",
	"كلمة المرور", "الرقم السري", "كود OTP", "رمز التأكيد",
	"أدخل الرمز", "أرسل الكود", "شارك الرمز", "الكود المرسل",
	"رمز لمرة واحدة", "كود التحقق", "PIN", "رمز الدخول",
}

// arabicBankPhrases trigger the arabic_bank_impersonation flag.
var arabicBankPhrases = []string{
	"بنك الراجحي", "البنك الأهلي", "بنك الرياض", "بنك الإنماء",
	"البنك السعودي", "مصرف", "حسابك البنكي", "بطاقتك الائتمانية",
	"الحساب الجاري", "التحويل البنكي", "رصيدك", "معاملة بنكية",
	"الخدمات المصرفية", "البنك المركزي", "ساما", "مؤسسة النقد",
}

// englishUrgencyPhrases trigger the urgency_phrase flag. Matched
// against lowercased text.
var englishUrgencyPhrases = []string{
	"urgent", "immediate", "act now", "limited time", "expires today",
	"last chance", "don't miss", "hurry", "quick", "asap",
	"within 24 hours", "before midnight", "ending soon",
}

// englishPenaltyPhrases trigger the penalty_threat flag.
var englishPenaltyPhrases = []string{
	"suspended", "blocked", "terminated", "penalty", "fine",
	"legal action", "violation", "final warning", "last notice",
	"required", "mandatory", "must", "obligation",
}

// englishOTPPhrases trigger the otp_request flag.
var englishOTPPhrases = []string{
	"verification code", "otp", "one-time password", "security code",
	"authentication code", "pin", "access code", "confirm code",
	"enter code", "share code", "send code",
}

// homoglyphRunes are visually-confusable substitutes for the Latin
// letters a/e/o/p/c/i/x/y (Cyrillic, Greek, and a few Latin-extended
// look-alikes).
var homoglyphRunes = map[rune]bool{
	'а': true, 'ạ': true, 'ą': true, // a
	'е': true, 'ė': true, 'ę': true, // e
	'о': true, 'ο': true, 'ọ': true, // o
	'р': true, 'ρ': true, // p
	'с': true, 'ϲ': true, // c
	'і': true, 'ı': true, 'ɪ': true, // i
	'х': true, 'χ': true, // x
	'у': true, 'ү': true, // y
}

// socialPlatforms mark a URL as originating from social media for the
// channel guess.
var socialPlatforms = []string{"facebook", "twitter", "instagram", "tiktok"}
