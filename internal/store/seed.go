package store

// Seed installs the launch content. It mirrors what the site shipped with
// and is meant to be called once on an empty store at startup.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.siteContent = SiteContent{
		Landing: LandingContent{
			HeroHeadline:     "Build Smarter.\nConvert Faster.",
			HeroSubheadline:  "We combine cutting-edge AI strategy with high-performance design to create digital systems that actually drive revenue in the Indian market.",
			HeroCtaPrimary:   "Get Free Consultation",
			HeroCtaSecondary: "Book a Demo",
			Features: []LandingFeature{
				{Title: "AI-Driven UX", Desc: "Predictive interfaces that adapt to user behavior.", Icon: "Sparkles"},
				{Title: "Conversion First", Desc: "Every pixel engineered for lead generation.", Icon: "Target"},
				{Title: "Cloud Scale", Desc: "High-speed hosting optimized for Indian networks.", Icon: "Zap"},
			},
			Testimonials: []Testimonial{
				{ID: "1", Name: "Julian Thorne", Company: "Lumina Tech", Quote: "Web Prime AI didn't just redesign our site; they rebuilt our entire sales process.", Rating: 5},
				{ID: "2", Name: "Sarah Jenkins", Company: "Aura Skincare", Quote: "The UGC ads they produced feel so authentic that our target audience stopped scrolling.", Rating: 5},
			},
		},
		About: AboutContent{
			MissionHeadline: "Design Meets Intelligence.",
			MissionBody:     "To democratize high-performance AI tech for every ambitious brand.",
			StoryBody:       "Web Prime AI started with a single realization: the gap between standard web design and real business performance was widening. Most sites looked great but failed to adapt to user intent.\n\nWe built this agency to bridge that gap by infusing every project with AI-driven strategy. We don't just build pages; we build automated growth machines that learn, adapt, and convert.",
			Team: []TeamMember{
				{ID: "1", Name: "Julian Thorne", Role: "Creative Director", Image: "https://picsum.photos/seed/t1/400/400"},
				{ID: "2", Name: "Sarah Jenkins", Role: "AI Strategist", Image: "https://picsum.photos/seed/t2/400/400"},
			},
		},
		Footer: FooterContent{
			Tagline:  "Empowering Your Website with AI. We build high-performance business machines designed to turn visitors into lifelong customers.",
			Email:    "support@webprimeai.com",
			Location: "New Delhi, IN",
			Socials: SocialLinks{
				LinkedIn:  "https://linkedin.com",
				Twitter:   "https://twitter.com",
				Instagram: "https://instagram.com",
				YouTube:   "https://youtube.com",
			},
		},
	}

	s.services = []Service{
		{
			ID:               "service-web",
			Name:             "Website Design",
			Slug:             "website-design",
			ShortDescription: "Optimized for Indian mobile networks. Predictive UI that converts traffic.",
			FullDescription:  "We build high-performance business machines designed to turn visitors into lifelong customers with Hinglish support and local payment integration.",
			Icon:             IconLayout,
			Features: []Feature{
				{Title: "Mobile-First for India", Desc: "90%+ traffic is mobile in India. We prioritize speed."},
				{Title: "Local Payment Ready", Desc: "Razorpay, Paytm, and UPI gateways integration."},
				{Title: "AI Hinglish Copy", Desc: "Communicate like your local customers."},
			},
			Process: []ProcessStep{
				{Step: "01", Title: "Strategy Audit", Desc: "Analyzing your conversion gaps."},
				{Step: "02", Title: "AI Build", Desc: "Engineering your custom solution."},
			},
			FAQs: []FAQ{
				{Question: "How long is delivery?", Answer: "Usually within 7-14 days depending on plan."},
			},
			PricingPlans: []PricingPlan{
				{ID: "p1", Name: "Starter", Price: "₹24,999", Description: "Ideal for Indian startups.", Benefits: []string{"Landing Page", "Maintenance: ₹7,000/mo", "Razorpay Ready"}, CtaText: "Launch Site"},
				{ID: "p2", Name: "Growth", Price: "₹59,999", Description: "Scale your business.", Benefits: []string{"Up to 5 Pages", "Maintenance: ₹7,000/mo", "WhatsApp API"}, CtaText: "Get Growth", IsHighlighted: true},
				{ID: "p3", Name: "Elite", Price: "Custom", Description: "Enterprise solutions.", Benefits: []string{"D2C Store", "Custom Support", "AI Chatbots"}, CtaText: "Contact Strategy"},
			},
			Image:      "https://picsum.photos/seed/web/800/600",
			Visibility: VisibilityShow,
			IsFeatured: true,
			SortOrder:  1,
		},
		{
			ID:               "service-ugc",
			Name:             "UGC Ads",
			Slug:             "ugc-ads",
			ShortDescription: "Authentic creator-style ads designed to scale Indian D2C brands.",
			FullDescription:  "Stop the scroll with authentic creator content that builds trust and drives ROAS for Indian audiences.",
			Icon:             IconVideo,
			Features: []Feature{
				{Title: "Regional Creators", Desc: "Access creators across Tier-1 and Tier-2 cities."},
				{Title: "Trust Building", Desc: "Authentic storytelling that relates to locals."},
			},
			Process: []ProcessStep{
				{Step: "01", Title: "Hook Creation", Desc: "Writing scripts that grab attention."},
			},
			FAQs: []FAQ{
				{Question: "Can we use regional languages?", Answer: "Yes, we support Hindi and major regional dialects."},
			},
			PricingPlans: []PricingPlan{
				{ID: "u1", Name: "Flash", Price: "₹19,999", Description: "Testing ad hooks.", Benefits: []string{"3 Videos", "1 Local Creator", "Reels Format"}, CtaText: "Buy Flash"},
				{ID: "u2", Name: "Ignite", Price: "₹49,999", Description: "Scale profitably.", Benefits: []string{"10 Videos", "3 Creators", "Data Audit"}, CtaText: "Scale Now", IsHighlighted: true},
				{ID: "u3", Name: "Dominate", Price: "₹99,999", Description: "Full coverage.", Benefits: []string{"25+ Videos", "Unlimited Network", "Daily Sync"}, CtaText: "Book Strategy"},
			},
			Image:      "https://picsum.photos/seed/ugc/800/600",
			Visibility: VisibilityShow,
			IsFeatured: true,
			SortOrder:  2,
		},
		{
			ID:               "service-qr",
			Name:             "AI QR Solutions",
			Slug:             "ai-qr-solutions",
			ShortDescription: "Smart engagement systems for local Indian retail and malls.",
			FullDescription:  "Transform offline footfall into digital leads instantly using AI-powered smart screens.",
			Icon:             IconQrCode,
			Features: []Feature{
				{Title: "WhatsApp First", Desc: "Direct-to-chat redirections for Indian consumers."},
				{Title: "Live Footfall", Desc: "Track every scan in real-time."},
			},
			Process: []ProcessStep{
				{Step: "01", Title: "Deployment", Desc: "Setting up screens in prime locations."},
			},
			FAQs: []FAQ{
				{Question: "Is it subscription based?", Answer: "Yes, with a monthly maintenance fee."},
			},
			PricingPlans: []PricingPlan{
				{ID: "q1", Name: "Boutique", Price: "₹4,999/mo", Description: "Local shop owners.", Benefits: []string{"5 Screens", "Maintenance: ₹7,000/mo", "WhatsApp Link"}, CtaText: "Equip Store"},
				{ID: "q2", Name: "Standard", Price: "₹14,999/mo", Description: "Multi-location venues.", Benefits: []string{"50 Screens", "Maintenance: ₹7,000/mo", "Heatmaps"}, CtaText: "Go Pro", IsHighlighted: true},
				{ID: "q3", Name: "Enterprise", Price: "Custom", Description: "Shopping mall scale.", Benefits: []string{"Unlimited Fleet", "White-label UI", "Custom API"}, CtaText: "Talk Sales"},
			},
			Image:      "https://picsum.photos/seed/qr/800/600",
			Visibility: VisibilityShow,
			IsFeatured: true,
			SortOrder:  3,
		},
	}

	s.posts = []BlogPost{
		{
			ID:         "1",
			Title:      "Why UGC Wins in 2025",
			Slug:       "ugc-wins-2025",
			Excerpt:    "Authentic content is winning.",
			Content:    "Full content here...",
			Date:       "Oct 12, 2024",
			Category:   "Advertising",
			Image:      "https://picsum.photos/seed/blog1/800/400",
			Status:     PostStatusPublished,
			Visibility: VisibilityShow,
		},
	}

	s.projects = []Project{
		{
			ID: "p1", Name: "LUMINA TECH REDESIGN", Client: "Lumina Tech", Category: "WEB DESIGN",
			Stat: "+42% CONVERSION", Description: "Strategic UI overhaul for a global SaaS leader.",
			Image: "https://picsum.photos/seed/web/800/600", MediaType: MediaImage,
			Visibility: VisibilityShow, Tags: []string{"SaaS", "UI/UX"},
		},
		{
			ID: "p2", Name: "UGC AD STRATEGY VAULT", Client: "D2C Brand X", Category: "UGC ADS",
			Stat: "3.8X ROAS", Description: "Performance video showcase for a high-growth skincare brand.",
			Image: "https://picsum.photos/seed/portfolio1/400/700", MediaType: MediaVideo,
			VideoURL:   "https://drive.google.com/file/d/1f622woUhNYgi-WjspbjecdTfCzaw02Eo/view?usp=drive_link",
			Visibility: VisibilityShow, Tags: []string{"Ads", "Video"},
		},
		{
			ID: "p3", Name: "RETAIL SMART SCREEN FLEET", Client: "Select Citywalk", Category: "QR SOLUTIONS",
			Stat: "15K SCANS/MO", Description: "Smart engagement deployment across 50 retail locations.",
			Image: "https://picsum.photos/seed/qr/800/600", MediaType: MediaLink,
			ExternalLink: "https://webprimeai.in",
			Visibility:   VisibilityShow, Tags: []string{"Retail", "QR"},
		},
	}

	s.ugcAds = []UgcAd{
		{
			ID: "u-portfolio-1", Title: "AGENCY STRATEGIC SHOWCASE", Creator: "Web Prime Studio",
			Description: "Our premier strategic campaign showcase.", Category: "STRATEGY",
			Platform: PlatformCustom, Thumbnail: "https://picsum.photos/seed/portfolio1/400/700",
			VideoURL: "https://drive.google.com/file/d/1f622woUhNYgi-WjspbjecdTfCzaw02Eo/view?usp=drive_link",
			Status:   PostStatusPublished, IsFeatured: true,
			Metrics: AdMetrics{Views: "128k", Roas: "4.8x"}, Visibility: VisibilityShow,
		},
		{
			ID: "u1", Title: "ORGANIC SKINCARE TESTIMONIAL", Creator: "Sarah J.",
			Description: "Authentic product review for D2C skincare.", Category: "SKINCARE",
			Platform: PlatformMeta, Thumbnail: "https://picsum.photos/seed/v1/400/700",
			Status: PostStatusPublished, IsFeatured: true,
			Metrics: AdMetrics{Views: "45k", Roas: "3.2x"}, Visibility: VisibilityShow,
		},
	}
}
